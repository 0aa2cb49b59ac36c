package main

import (
	"io"

	"github.com/cloudfoundry/jibber_jabber"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	initEnglish()
	initChinese()
}

func initEnglish() {
	// main.go
	message.SetString(language.English, "parse option error: %s", "Parse option error: %s")
	message.SetString(language.English, "couldn't open Git repository: %s", "Couldn't open Git repository: %s")
	message.SetString(language.English, "scanning repository error: %s", "Scanning repository error: %s")
	message.SetString(language.English, "no files were scanned",
		"No file at or above the size limit was found. Adjust --limit and try again.")
	message.SetString(language.English, "no patterns were selected",
		"You haven't selected any pattern. Please select at least one.")
	message.SetString(language.English, "operation aborted", "The operation has been aborted.")
	message.SetString(language.English, "git-lfs is not installed",
		"git-lfs is not installed. Download it first: https://github.com/git-lfs/git-lfs/releases")
	message.SetString(language.English, "installed git-lfs hooks", "Installed git-lfs hooks in this repository.")
	message.SetString(language.English, "derived tracking patterns:", "Derived tracking patterns:")
	message.SetString(language.English, "tracking patterns added to %s", "Tracking patterns added to %s")
	message.SetString(language.English, "nothing new to track", "All derived patterns are already present; nothing to append.")
	message.SetString(language.English, "now tracking %s", "Now tracking %s with Git LFS")
	message.SetString(language.English, "attributes write error: %s", "Attributes write error: %s")
	message.SetString(language.English, "rewriting history with git lfs migrate import...",
		"Rewriting history with git lfs migrate import...")
	message.SetString(language.English, "migrate import done", "History rewritten; matching blobs moved to LFS.")
	message.SetString(language.English, "migrate import failed: %s", "Migrate import failed: %s")
	message.SetString(language.English, "pushing LFS objects and refs to %s...", "Pushing LFS objects and refs to %s...")
	message.SetString(language.English, "push done", "Successfully pushed the rewritten repository.")
	message.SetString(language.English, "push failed: %s", "Push failed: %s")
	message.SetString(language.English, "skipped %d units during scan", "Skipped %d units during scan (see details above).")
	message.SetString(language.English, "skipped: %s", "Skipped: %s")
	message.SetString(language.English, "committed %s", "Committed %s")
	message.SetString(language.English, "scan finished in %s: %d files visited, %d commits scanned (%s)",
		"Scan finished in %s: %d files visited, %d commits scanned (%s mode)")

	// scan.go
	message.SetString(language.English, "scanned %d commits...", "Scanned %d commits...")
	message.SetString(language.English, "scan done", "Scan done!")
	message.SetString(language.English, "the following paths held the largest objects seen in the scan range",
		"The following paths held the largest objects seen in the scan range. The same path may have grown over several commits; only its biggest version is listed.")

	// git.go
	message.SetString(language.English, "clean up the repository...", "Cleaning up the repository...")

	// options.go
	message.SetString(language.English, "help info", Usage)
	message.SetString(language.English, "option format error: %s", "Option format error: %s")
	message.SetString(language.English, "build version: %s", "Build version: %s")

	// cmd.go
	message.SetString(language.English, "ask file size", "Minimum file size to scan for, like: 1M, 500k:")
	message.SetString(language.English, "ask file size help", "The value needs a unit, like 10K. Valid units are B,K,M,G, case insensitive.")
	message.SetString(language.English, "ask file number", "How many results to show, default 3:")
	message.SetString(language.English, "ask file number help", "Shows the top 3 by default; a page holds 10 rows, so 10 or fewer reads best.")
	message.SetString(language.English, "select patterns message", "Select the patterns to hand over to Git LFS (multi-select):")
	message.SetString(language.English, "select patterns help", "Arrow keys move, space toggles one, enter confirms.")
	message.SetString(language.English, "confirm migrate message",
		"Rewriting history is destructive and changes every commit id. Back up the repository first. Continue?")
	message.SetString(language.English, "ask question module fail: %s", "Ask question module fail: %s")
}

func initChinese() {
	// main.go
	message.SetString(language.Chinese, "parse option error: %s", "解析参数出错: %s")
	message.SetString(language.Chinese, "couldn't open Git repository: %s", "无法打开 Git 仓库: %s")
	message.SetString(language.Chinese, "scanning repository error: %s", "扫描仓库出错: %s")
	message.SetString(language.Chinese, "no files were scanned", "没有找到达到大小阈值的文件，请调整 --limit 参数后重试。")
	message.SetString(language.Chinese, "no patterns were selected", "你没有选择任何匹配模式，请至少选择一个。")
	message.SetString(language.Chinese, "operation aborted", "操作已取消。")
	message.SetString(language.Chinese, "git-lfs is not installed",
		"本地没有安装 git-lfs，请先下载安装: https://github.com/git-lfs/git-lfs/releases")
	message.SetString(language.Chinese, "installed git-lfs hooks", "已在当前仓库安装 git-lfs 钩子。")
	message.SetString(language.Chinese, "derived tracking patterns:", "生成的追踪模式:")
	message.SetString(language.Chinese, "tracking patterns added to %s", "追踪模式已写入 %s")
	message.SetString(language.Chinese, "nothing new to track", "生成的模式均已存在，无需追加。")
	message.SetString(language.Chinese, "now tracking %s", "Git LFS 现已追踪 %s")
	message.SetString(language.Chinese, "attributes write error: %s", "写入属性文件出错: %s")
	message.SetString(language.Chinese, "rewriting history with git lfs migrate import...",
		"正在通过 git lfs migrate import 重写历史...")
	message.SetString(language.Chinese, "migrate import done", "历史已重写，匹配的大文件已迁移到 LFS。")
	message.SetString(language.Chinese, "migrate import failed: %s", "迁移失败: %s")
	message.SetString(language.Chinese, "pushing LFS objects and refs to %s...", "正在推送 LFS 对象和引用到 %s ...")
	message.SetString(language.Chinese, "push done", "重写后的仓库推送成功。")
	message.SetString(language.Chinese, "push failed: %s", "推送失败: %s")
	message.SetString(language.Chinese, "skipped %d units during scan", "扫描过程中跳过了 %d 个单元（详见上方输出）。")
	message.SetString(language.Chinese, "skipped: %s", "已跳过: %s")
	message.SetString(language.Chinese, "committed %s", "已提交 %s")
	message.SetString(language.Chinese, "scan finished in %s: %d files visited, %d commits scanned (%s)",
		"扫描耗时 %s: 访问 %d 个文件，扫描 %d 个提交（%s 模式）")

	// scan.go
	message.SetString(language.Chinese, "scanned %d commits...", "已扫描 %d 个提交...")
	message.SetString(language.Chinese, "scan done", "扫描完成!")
	message.SetString(language.Chinese, "the following paths held the largest objects seen in the scan range",
		"以下路径在扫描范围内出现过最大的对象。同一路径可能在多个提交中增大，这里只列出其最大的版本。")

	// git.go
	message.SetString(language.Chinese, "clean up the repository...", "正在清理仓库...")

	// options.go
	message.SetString(language.Chinese, "help info", Usage)
	message.SetString(language.Chinese, "option format error: %s", "参数格式错误: %s")
	message.SetString(language.Chinese, "build version: %s", "构建版本: %s")

	// cmd.go
	message.SetString(language.Chinese, "ask file size", "选择要扫描文件的最低大小，如：1M, 500k:")
	message.SetString(language.Chinese, "ask file size help", "大小数值需要单位，如: 10K. 可选单位有B,K,M,G, 且不区分大小写")
	message.SetString(language.Chinese, "ask file number", "选择要显示扫描结果的数量，默认3:")
	message.SetString(language.Chinese, "ask file number help", "默认显示前3个，单页最大显示为10行，所以最好不超过10")
	message.SetString(language.Chinese, "select patterns message", "请选择要交给 Git LFS 追踪的模式(可多选):")
	message.SetString(language.Chinese, "select patterns help", "使用键盘的上下方向键换行，使用空格键选中单个，使用Enter键确认选择")
	message.SetString(language.Chinese, "confirm migrate message",
		"重写历史是破坏性操作，所有提交 ID 都会改变，请先备份仓库。是否继续?")
	message.SetString(language.Chinese, "ask question module fail: %s", "交互提问模块出错: %s")
}

// find local languange type. LC_ALL > LANG > LANGUAGE
func Local() language.Tag {
	userLanguage, err := jibber_jabber.DetectLanguage()
	if err != nil {
		// unset locale must not kill a migration run
		return language.English
	}
	// fix LC_ALL=C.UTF-8
	if userLanguage == "C" {
		userLanguage = "en"
	}
	return language.Make(userLanguage)
}

// local printer
func LocalPrinter() *message.Printer {
	return message.NewPrinter(Local())
}

// local fmt.Sprintf
func LocalSprintf(key message.Reference, a ...interface{}) string {
	return LocalPrinter().Sprintf(key, a...)
}

// local fmt.Fprintf
func LocalFprintf(w io.Writer, key message.Reference, a ...interface{}) (int, error) {
	return LocalPrinter().Fprintf(w, key, a...)
}

/*  PRINT WITH COLOR */

func PrintLocalWithRed(key message.Reference, a ...interface{}) {
	PrintRed(LocalSprintf(key, a...))
}

func PrintLocalWithGreen(key message.Reference, a ...interface{}) {
	PrintGreen(LocalSprintf(key, a...))
}

func PrintLocalWithYellow(key message.Reference, a ...interface{}) {
	PrintYellow(LocalSprintf(key, a...))
}

func PrintLocalWithBlue(key message.Reference, a ...interface{}) {
	PrintBlue(LocalSprintf(key, a...))
}

func PrintLocalWithPlain(key message.Reference, a ...interface{}) {
	PrintPlain(LocalSprintf(key, a...))
}

func PrintLocalWithRedln(key message.Reference, a ...interface{}) {
	PrintRedln(LocalSprintf(key, a...))
}

func PrintLocalWithGreenln(key message.Reference, a ...interface{}) {
	PrintGreenln(LocalSprintf(key, a...))
}

func PrintLocalWithYellowln(key message.Reference, a ...interface{}) {
	PrintYellowln(LocalSprintf(key, a...))
}

func PrintLocalWithBlueln(key message.Reference, a ...interface{}) {
	PrintBlueln(LocalSprintf(key, a...))
}

func PrintLocalWithPlainln(key message.Reference, a ...interface{}) {
	PrintPlainln(LocalSprintf(key, a...))
}
