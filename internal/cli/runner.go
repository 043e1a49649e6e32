package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/idilsaglam/eatsplit/internal/app"
	"github.com/idilsaglam/eatsplit/internal/config"
	"github.com/idilsaglam/eatsplit/internal/logging"
	"github.com/idilsaglam/eatsplit/internal/model"
	"github.com/idilsaglam/eatsplit/internal/roster"
	"github.com/idilsaglam/eatsplit/internal/store/jsonstore"
	"github.com/idilsaglam/eatsplit/internal/tui"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool // list grouped by standing
	Config *config.Config
}

// interactive is swapped in tests.
var interactive = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Config == nil {
		opt.Config = config.Load()
	}
	ui.SetTheme(opt.Config.Theme)

	cmd, a := "tui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		return doInteractive(opt)

	case "ls":
		return doList(opt)

	case "add":
		if len(a) < 1 || len(a) > 2 {
			ui.Fail("usage: eatsplit add <name> [image-url]")
			return 2
		}
		image := ""
		if len(a) == 2 {
			image = a[1]
		}
		return doAdd(opt, a[0], image)

	case "split":
		if len(a) < 3 || len(a) > 4 {
			ui.Fail("usage: eatsplit split <friend> <bill> <paid> [user|friend]")
			return 2
		}
		payer := model.PayerUser
		if len(a) == 4 {
			p, err := model.ParsePayer(strings.ToLower(a[3]))
			if err != nil {
				ui.Fail("split: " + err.Error())
				return 2
			}
			payer = p
		}
		return doSplit(opt, a[0], a[1], a[2], payer)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	ui.Print(`eatsplit - split bills with friends

Usage:
  eatsplit [flags] [subcommand] [args]

Subcommands:
  tui                                   Interactive UI (default)
  ls                                    List friends and balances
  add <name> [image-url]                Add a friend for this session and list
  split <friend> <bill> <paid> [payer]  Split a bill with a friend (payer: user|friend)

Flags:
  -group           group ls output by standing
  -theme <name>    classic | neon | mono
  -seed <file>     load the roster from a JSON file

Examples:
  eatsplit
  eatsplit -group ls
  eatsplit split Clark 100 40
  eatsplit split Sarah 60 20 friend`)
}

// -------------- session setup ----------------

func newSession(opt Options, logOut io.Writer) (*app.App, io.Closer, error) {
	cfg := opt.Config

	closer, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile != "" {
		logOut = closer
	}
	logger := logging.Setup(logOut, cfg.Level())

	r, err := loadRoster(cfg.SeedFile)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	logger.Debug("session ready", "friends", r.Len(), "seed_file", cfg.SeedFile)

	a := app.New(r, app.WithImageBase(cfg.ImageBase), app.WithLogger(logger))
	return a, closer, nil
}

func loadRoster(seedFile string) (*roster.Roster, error) {
	if seedFile == "" {
		return roster.NewSeeded(), nil
	}
	friends, err := jsonstore.Load(seedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	if len(friends) == 0 {
		return roster.NewSeeded(), nil
	}
	r, err := roster.New(friends...)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return r, nil
}

// -------------- subcommand impls ----------------

func doInteractive(opt Options) int {
	a, closer, err := newSession(opt, io.Discard)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()

	if err := interactive(a); err != nil {
		slog.Error("interactive session failed", "error", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	ui.Print(rosterPanel(a.Roster(), opt.Group))
	return 0
}

func doList(opt Options) int {
	a, closer, err := newSession(opt, os.Stderr)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()

	ui.Print(rosterPanel(a.Roster(), opt.Group))
	return 0
}

func doAdd(opt Options, name, image string) int {
	a, closer, err := newSession(opt, os.Stderr)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()

	a.ToggleAddFriend()
	a.AddForm().Name = name
	if image != "" {
		a.AddForm().Image = image
	}
	f, ok := a.SubmitAddFriend()
	if !ok {
		ui.Fail("add: name and image are required")
		return 2
	}
	ui.OK("added " + f.Name)
	ui.Print(rosterPanel(a.Roster(), opt.Group))
	return 0
}

func doSplit(opt Options, who, bill, paid string, payer model.Payer) int {
	a, closer, err := newSession(opt, os.Stderr)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()

	f, ok := findFriend(a.Roster(), who)
	if !ok {
		ui.Fail("split: no friend named " + who)
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `eatsplit ls` to see your friends"))
		return 2
	}

	a.Select(f.ID)
	form := a.SplitForm()
	if !form.SetBill(bill) {
		ui.Fail("split: bill is not a number: " + bill)
		return 2
	}
	if !form.SetPaid(paid) {
		ui.Fail(fmt.Sprintf("split: your expense must be a number no greater than the bill, got %s", paid))
		return 2
	}
	form.SetPayer(payer)

	updated, ok := a.SubmitSplit()
	if !ok {
		ui.Fail("split: bill and your expense must both be non-zero")
		return 2
	}
	ui.OK(updated.Message())
	return 0
}

// findFriend matches an id or a case-insensitive name.
func findFriend(r *roster.Roster, who string) (model.Friend, bool) {
	if f, ok := r.Get(who); ok {
		return f, true
	}
	for _, f := range r.Friends() {
		if strings.EqualFold(f.Name, who) {
			return f, true
		}
	}
	return model.Friend{}, false
}
