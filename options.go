package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

var BuildVersion string

const Usage = `usage: git lfs-migrate [options]

********************* Important! **********************
*** The migrate command is a destructive operation ****
*** Please backup your repo before do any operation ***
*******************************************************

git lfs-migrate works in two stages. The first stage scans
your Git repository for large objects, either the current
working tree (default) or the full commit history (--history).
The second stage derives Git LFS tracking patterns from the
scan result, appends them to .gitattributes, and optionally
rewrites history (--migrate) and pushes the result (--push).

  -v, --verbose		show process information
  -V, --version		show git-lfs-migrate version number
  -h, --help		show usage information
  -p, --path		Git repository path, default is '.'
  -s, --scan		scan the repository for large objects
  -H, --history		scan full commit history instead of the working tree
  -l, --limit		set the file size limitation, like: '--limit=10m'
  -n, --number		set the number of results to show
  -i, --interactive 	enable interactive operation
  -t, --track		append derived patterns to .gitattributes
  -m, --migrate		rewrite history via 'git lfs migrate import' (implies --track)
      --push		push LFS objects then refs after a successful run
  -r, --remote		remote to push to, default is 'origin'
  -b, --branch		branch to push, default is 'main'

Git Large File Storage(LFS) replaces large files such as
multi-media file, executable file with text pointers inside Git,
while storing the file contents on a remote server.
So please make sure you have installed git-lfs in your local first.
To download it, click: https://github.com/git-lfs/git-lfs/releases

`

type Options struct {
	verbose  bool
	version  bool
	help     bool
	path     string
	scan     bool
	history  bool
	limit    string
	number   uint32
	interact bool
	track    bool
	migrate  bool
	push     bool
	remote   string
	branch   string
}

func (op *Options) init(args []string) error {

	flags := pflag.NewFlagSet("git-lfs-migrate", pflag.ContinueOnError)

	flags.BoolVarP(&op.verbose, "verbose", "v", false, "show process information")
	flags.BoolVarP(&op.version, "version", "V", false, "show git-lfs-migrate version number")
	flags.BoolVarP(&op.help, "help", "h", false, "show usage information")

	flags.StringVarP(&op.path, "path", "p", ".", "Git repository path, default is '.'")
	flags.BoolVarP(&op.scan, "scan", "s", false, "scan the repository for large objects")
	flags.BoolVarP(&op.history, "history", "H", false, "scan full commit history instead of the working tree")
	// default file threshold is 1M
	flags.StringVarP(&op.limit, "limit", "l", "1m", "set the file size limitation")
	// default to show top 3 largest file
	flags.Uint32VarP(&op.number, "number", "n", 3, "set the number of results to show")
	flags.BoolVarP(&op.interact, "interactive", "i", false, "enable interactive operation")
	flags.BoolVarP(&op.track, "track", "t", false, "append derived patterns to .gitattributes")
	flags.BoolVarP(&op.migrate, "migrate", "m", false, "rewrite history via 'git lfs migrate import'")
	flags.BoolVar(&op.push, "push", false, "push LFS objects then refs after a successful run")
	flags.StringVarP(&op.remote, "remote", "r", "origin", "remote to push to")
	flags.StringVarP(&op.branch, "branch", "b", "main", "branch to push")

	err := flags.Parse(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if len(flags.Args()) != 0 {
		return errors.New("excess arguments")
	}
	// a history rewrite without tracked patterns would re-add the files
	if op.migrate {
		op.track = true
	}
	return nil
}

func usage() {
	fmt.Fprint(os.Stderr, Usage)
}

func (op *Options) ParseOptions(args []string) error {
	if err := op.init(args); err != nil {
		PrintLocalWithRedln("option format error: %s", err)
		os.Exit(1)
	}
	if op.help || len(args) == 0 {
		usage()
	}
	if op.version {
		PrintLocalWithPlainln("build version: %s", BuildVersion)
	}
	return nil
}
