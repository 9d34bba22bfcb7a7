// Command travelagency is the terminal shell over the client core: it owns
// the session, the language preference and one list view per resource, and
// maps shell commands onto them.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Didine-06/travel-agency-sub000/internal/apiclient"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/language"
	"github.com/Didine-06/travel-agency-sub000/internal/localstore"
	"github.com/Didine-06/travel-agency-sub000/internal/session"
	"github.com/Didine-06/travel-agency-sub000/pkg/config"
	"github.com/Didine-06/travel-agency-sub000/pkg/logger"
)

// printNavigator renders route changes as shell output.
type printNavigator struct{}

func (printNavigator) Go(route string) {
	fmt.Printf("-> %s\n", route)
}

// localTokens reads the bearer token straight from persisted state.
type localTokens struct {
	local *localstore.Store
}

func (t localTokens) AccessToken() (string, bool) {
	return t.local.Get(localstore.KeyAccessToken)
}

// memLocale is the shell's stand-in for a UI locale.
type memLocale struct {
	mu   sync.Mutex
	lang string
}

func (l *memLocale) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lang
}

func (l *memLocale) Set(lang string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lang = lang
}

type app struct {
	client   *apiclient.Client
	session  *session.Store
	language *language.Reconciler
	views    map[string]*resourceView
	active   *resourceView
	form     formSession
	loc      *time.Location
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: "travelagency",
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLog := logger.Get()

	local, err := localstore.New(cfg.Client.StateFile)
	if err != nil {
		appLog.Fatal("failed to open state file", zap.Error(err))
	}

	var sess *session.Store
	client := apiclient.New(&apiclient.Config{
		BaseURL: cfg.Client.APIBaseURL,
		Timeout: cfg.Client.Timeout,
		Tokens:  localTokens{local: local},
		OnUnauthorized: func() {
			if sess != nil {
				sess.HandleUnauthorized()
			}
		},
		Logger: appLog,
	})

	sess = session.NewStore(local, client.Auth(), printNavigator{}, appLog)
	sess.Bootstrap()

	locale := &memLocale{lang: cfg.Client.DefaultLanguage}
	lang := language.New(local, client.Profile(), locale, sess.IsAuthenticated, appLog)

	a := &app{
		client:   client,
		session:  sess,
		language: lang,
		views:    buildViews(client),
		loc:      time.Local,
	}

	ctx := context.Background()
	if sess.IsAuthenticated() {
		lang.SyncFromServer(ctx)
		cur := sess.Current()
		fmt.Printf("signed in as %s (%s), language %s\n", cur.Name, cur.Role, lang.Language())
	} else {
		fmt.Println("not signed in, use: login <email> <password>")
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if quit := a.dispatch(ctx, line); quit {
				return
			}
		}
		fmt.Print("> ")
	}
}

func (a *app) dispatch(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		printHelp()

	case "login":
		if len(args) != 2 {
			fmt.Println("usage: login <email> <password>")
			return false
		}
		if err := a.session.Login(ctx, args[0], args[1]); err != nil {
			fmt.Printf("login failed: %v\n", err)
			return false
		}
		a.language.SyncFromServer(ctx)
		cur := a.session.Current()
		fmt.Printf("welcome %s (%s), language %s\n", cur.Name, cur.Role, a.language.Language())

	case "register":
		if len(args) != 4 {
			fmt.Println("usage: register <email> <password> <first> <last>")
			return false
		}
		_, err := a.client.Auth().Register(ctx, dto.RegisterRequest{
			Email: args[0], Password: args[1], FirstName: args[2], LastName: args[3],
		})
		if err != nil {
			fmt.Printf("register failed: %v\n", err)
			return false
		}
		fmt.Println("registered, now log in")

	case "logout":
		a.session.Logout(ctx)
		fmt.Println("signed out")

	case "whoami":
		cur := a.session.Current()
		if cur == nil {
			fmt.Println("not signed in")
			return false
		}
		fmt.Printf("%s <%s> role=%s landing=%s\n", cur.Name, cur.Email, cur.Role, session.LandingRoute(cur.Role))

	case "lang":
		if len(args) == 0 {
			fmt.Println(a.language.Language())
			return false
		}
		if err := a.language.SetLanguage(ctx, args[0]); err != nil {
			fmt.Printf("language change failed: %v\n", err)
			return false
		}
		fmt.Printf("language is now %s\n", a.language.Language())

	case "open":
		if len(args) != 1 {
			fmt.Printf("usage: open <%s>\n", strings.Join(viewNames(a.views), "|"))
			return false
		}
		view, ok := a.views[args[0]]
		if !ok {
			fmt.Printf("unknown resource %q\n", args[0])
			return false
		}
		a.active = view
		view.load(ctx, false)
		a.show()

	case "ls":
		if a.active == nil {
			fmt.Println("open a resource first")
			return false
		}
		a.active.load(ctx, true)
		a.show()

	case "search":
		if a.requireView() {
			return false
		}
		a.active.setQuery(strings.Join(args, " "))
		a.show()

	case "page":
		if a.requireView() || len(args) != 1 {
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("usage: page <n>")
			return false
		}
		a.active.setPage(n)
		a.show()

	case "size":
		if a.requireView() || len(args) != 1 {
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("usage: size <n>")
			return false
		}
		a.active.setPageSize(n)
		a.show()

	case "select":
		if a.requireView() || len(args) != 1 {
			return false
		}
		a.active.toggle(args[0])
		fmt.Printf("selected: %v\n", a.active.selected())

	case "select-all":
		if a.requireView() {
			return false
		}
		a.active.toggleAll()
		fmt.Printf("selected: %v\n", a.active.selected())

	case "rm":
		if a.requireView() || len(args) != 1 {
			return false
		}
		a.active.requestOne(args[0])
		fmt.Printf("about to delete %v, type confirm or cancel\n", a.active.pending())

	case "rm-selected":
		if a.requireView() {
			return false
		}
		a.active.requestSel()
		ids := a.active.pending()
		if len(ids) == 0 {
			fmt.Println("nothing selected")
			return false
		}
		fmt.Printf("about to delete %v, type confirm or cancel\n", ids)

	case "confirm":
		if a.requireView() {
			return false
		}
		a.active.confirm(ctx)
		a.showNotice()
		a.show()

	case "cancel":
		if a.requireView() {
			return false
		}
		a.active.cancel()
		fmt.Println("cancelled")

	case "do":
		if a.requireView() || len(args) != 2 {
			fmt.Println("usage: do <op> <id>")
			return false
		}
		op, ok := a.active.transitions[args[0]]
		if !ok {
			fmt.Printf("unknown op %q for %s\n", args[0], a.active.name)
			return false
		}
		a.active.transition(ctx, args[1], op, args[0]+" done")
		a.showNotice()
		a.show()

	case "new", "edit":
		a.openForm(ctx, cmd, args)

	case "set":
		if a.form == nil {
			fmt.Println("no form open")
			return false
		}
		if len(args) < 2 {
			fmt.Println("usage: set <field> <value>")
			return false
		}
		if err := a.form.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Println(err)
			return false
		}
		fmt.Print(a.form.Render())

	case "form":
		if a.form == nil {
			fmt.Println("no form open")
			return false
		}
		fmt.Print(a.form.Render())

	case "submit":
		if a.form == nil {
			fmt.Println("no form open")
			return false
		}
		a.form.Submit(ctx)
		fmt.Print(a.form.Render())

	case "close":
		if a.form == nil {
			fmt.Println("no form open")
			return false
		}
		a.form.Cancel()
		a.form = nil
		fmt.Println("form closed")

	default:
		fmt.Printf("unknown command %q, try help\n", cmd)
	}
	return false
}

// openForm handles the new/edit commands for resources that have overlay
// forms.
func (a *app) openForm(ctx context.Context, cmd string, args []string) {
	reload := func(name string) func() {
		return func() {
			if view, ok := a.views[name]; ok {
				view.load(context.Background(), true)
			}
		}
	}

	switch {
	case cmd == "new" && len(args) == 1 && args[0] == "destination":
		f := newDestinationForm(a.client, reload("destinations"))
		f.OpenCreate()
		a.form = f
	case cmd == "new" && len(args) == 1 && args[0] == "ticket":
		f := newTicketForm(a.client, a.loc, reload("tickets"))
		f.OpenCreate()
		a.form = f
	case cmd == "edit" && len(args) == 2 && args[0] == "destination":
		f := newDestinationForm(a.client, reload("destinations"))
		f.OpenEdit(ctx, args[1])
		a.form = f
	case cmd == "edit" && len(args) == 2 && args[0] == "ticket":
		f := newTicketForm(a.client, a.loc, reload("tickets"))
		f.OpenEdit(ctx, args[1])
		a.form = f
	default:
		fmt.Println("usage: new destination|ticket, edit destination|ticket <id>")
		return
	}
	fmt.Print(a.form.Render())
}

func (a *app) requireView() bool {
	if a.active == nil {
		fmt.Println("open a resource first")
		return true
	}
	return false
}

func (a *app) show() {
	if a.active == nil {
		return
	}
	fmt.Printf("%s:\n%s", a.active.name, a.active.render())
}

func (a *app) showNotice() {
	if a.active == nil {
		return
	}
	if n := a.active.notice(); n != nil {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
		a.active.clearNotice()
	}
}

func viewNames(views map[string]*resourceView) []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	return names
}

func printHelp() {
	fmt.Print(`commands:
  login <email> <password>      sign in
  register <email> <pw> <f> <l> create a client account
  logout | whoami | lang [code]
  open <resource>               destinations, packages, tickets, bookings, consultations
  ls | search <text> | page <n> | size <n>
  select <id> | select-all
  rm <id> | rm-selected | confirm | cancel
  do <op> <id>                  resource transitions (activate, publish, pay, confirm, close, ...)
  new destination|ticket        open a create form
  edit destination|ticket <id>  open an edit form
  set <field> <value> | form | submit | close
  exit
`)
}
