package main

import (
	"io"
	"log"
	"os"

	"github.com/shu-go/gli"
	"github.com/shu-go/rog"

	"github.com/shu-go/opac/config"
	"github.com/shu-go/opac/opacity"
	"github.com/shu-go/opac/winapi"
)

// Version is the app version.
var Version string = "0.1.0"

var (
	verbose = log.New(io.Discard, "", 0)

	appConfig *config.Config
)

type globalCmd struct {
	Set     setCmd     `cli:"set, s" help:"set the opacity once"`
	List    listCmd    `cli:"list, ls" help:"list main windows of the target"`
	Recover recoverCmd `cli:"recover" help:"make the target windows opaque again"`
	Watch   watchCmd   `cli:"watch, w" help:"keep new target windows at the opacity"`
	Serve   serveCmd   `cli:"serve" help:"serve set_opacity/restore_opacity as MCP tools on stdio"`

	Verbose bool   `cli:"verbose, v" help:"verbose output to stderr"`
	Config  string `cli:"config" help:"config file (default: <UserConfigDir>/opac/config.yaml)"`
	Env     string `cli:"env" help:"dotenv file"`
}

func (g *globalCmd) Init() {
	g.Env = ".env"
}

func (g globalCmd) Before() error {
	if g.Verbose {
		verbose.SetOutput(os.Stderr)
	}

	path := g.Config
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path, g.Env)
	if err != nil {
		return err
	}
	verbose.Printf("config %s: target=%q percent=%d interval=%v", path, cfg.Target, cfg.Percent, cfg.Interval)
	appConfig = cfg

	return nil
}

func currentConfig() *config.Config {
	if appConfig == nil {
		appConfig = config.Default()
	}
	return appConfig
}

// newController opens the desktop and targets name, or the configured
// target when name is empty.
func newController(name string) (*opacity.Controller, error) {
	if name == "" {
		name = currentConfig().Target
	}

	d, err := winapi.Open()
	if err != nil {
		return nil, opacity.Environment(err)
	}
	rog.Debug("target ", name)

	return opacity.NewController(name, d, d), nil
}

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = "opac"
	app.Desc = "set the opacity of an application's main windows"
	app.Version = Version
	app.Usage = `opac set 80
opac set --target Slack 50%
opac watch --percent 85
opac recover`
	app.Run(os.Args)
}
