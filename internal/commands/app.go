// Package commands implements the subcommands of the command line tool.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/niu-cloud-cli/internal/config"
	"github.com/woozymasta/niu-cloud-cli/internal/logger"
	"github.com/woozymasta/niu-cloud-cli/internal/niucloud"
	"github.com/woozymasta/niu-cloud-cli/internal/output"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

var (
	// ErrConflictingOptions is returned when mutually exclusive options are combined.
	ErrConflictingOptions = errors.New("conflicting options")
	// ErrNoSerial is returned when neither --sn nor the token file names a vehicle.
	ErrNoSerial = errors.New("no vehicle serial number, use --sn")
	// ErrNothingToRender is returned when a document cannot be built from the received data.
	ErrNothingToRender = errors.New("nothing to render")
)

// Global holds the options shared by every command.
type Global struct {
	Logger logger.Logger `group:"Logger options"`

	Token      string `short:"t" long:"token"       env:"NIU_TOKEN"       description:"Session token, takes precedence over --token-file"`
	TokenFile  string `short:"T" long:"token-file"  env:"NIU_TOKEN_FILE"  description:"Token file to load the session token from (create-token stores it there)"`
	Debug      bool   `short:"d" long:"debug"       env:"NIU_DEBUG"       description:"Log every API request (forces debug log level)"`
	TimeFormat string `long:"time-format"           env:"NIU_TIME_FORMAT" description:"strftime layout for timestamps (default %Y-%m-%d %H:%M:%S)"`
	AccountURL string `long:"account-url"           env:"NIU_ACCOUNT_URL" description:"Account service base URL"`
	APIURL     string `long:"api-url"               env:"NIU_API_URL"     description:"Vehicle API base URL"`
	Retries    int    `long:"retries"               env:"NIU_RETRIES"     description:"Tries per request on network errors" default:"3"`
}

// App carries the global options and the process wiring of a command run.
type App struct {
	Global

	// Stdout receives command output; logs go to stderr.
	Stdout io.Writer
	// HTTPClient overrides the retrying default client.
	HTTPClient niucloud.Doer
	// Location is used to display timestamps; nil means time.Local.
	Location *time.Location
	// Context bounds every API call.
	Context context.Context
}

// session is everything a command needs to talk to the cloud.
type session struct {
	client *niucloud.Client
	times  *output.TimeFormatter
	serial string
}

// NewApp returns an App writing to stdout.
func NewApp(stdout io.Writer) *App {
	return &App{Stdout: stdout, Context: context.Background()}
}

// NewParser builds the command line parser with every command registered.
// Help is returned as a *flags.Error of type flags.ErrHelp, other errors
// are left for the caller to report.
func NewParser(app *App) (*flags.Parser, error) {
	parser := flags.NewParser(&app.Global, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "niu-cloud-cli"

	cmds := []struct {
		data  flags.Commander
		name  string
		short string
	}{
		{&CreateToken{app: app}, "create-token", "Create a session token"},
		{&GetVehicles{app: app}, "get-vehicles", "Get vehicles"},
		{&GetVehiclePos{app: app}, "get-vehicle-pos", "Get vehicle position"},
		{&GetBatteryInfo{app: app}, "get-battery-info", "Get battery information"},
		{&GetBatteryHealth{app: app}, "get-battery-health", "Get battery health"},
		{&GetBatteryChart{app: app}, "get-battery-chart", "Get battery chart"},
		{&GetBatteryChartRaw{app: app}, "get-battery-chart-raw", "Get one raw battery chart page"},
		{&GetTracks{app: app}, "get-tracks", "Get recorded tracks"},
		{&GetTrackDetail{app: app}, "get-track-detail", "Get track detail"},
		{&GetFirmwareVersion{app: app}, "get-firmware-version", "Get firmware version"},
		{&GetUpdateInfo{app: app}, "get-update-info", "Get update information"},
		{&GetMotorInfo{app: app}, "get-motor-info", "Get motor information"},
	}

	for _, c := range cmds {
		if _, err := parser.AddCommand(c.name, c.short, c.short+".", c.data); err != nil {
			return nil, fmt.Errorf("register %s: %w", c.name, err)
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		app.Setup()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	return parser, nil
}

// Setup applies the logging options.
func (a *App) Setup() {
	if a.Debug {
		a.Logger.Level = "debug"
	}
	a.Logger.Setup()
}

func (a *App) ctx() context.Context {
	if a.Context == nil {
		return context.Background()
	}
	return a.Context
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// newClient builds an API client. cfg may be nil.
func (a *App) newClient(token string, cfg *config.Config) *niucloud.Client {
	opts := niucloud.Options{
		HTTPClient: a.HTTPClient,
		AccountURL: a.AccountURL,
		APIURL:     a.APIURL,
		Token:      token,
		Retries:    a.Retries,
	}
	if cfg != nil {
		opts.AccountURL = firstNonEmpty(opts.AccountURL, cfg.AccountURL)
		opts.APIURL = firstNonEmpty(opts.APIURL, cfg.APIURL)
	}

	return niucloud.New(opts)
}

// open resolves the session token, the vehicle serial number and the time
// format. An explicit token wins over the token file; flag values win over
// file values.
func (a *App) open(serial string, needSerial bool) (*session, error) {
	token := a.Token
	var cfg *config.Config

	if token == "" {
		if a.TokenFile == "" {
			return nil, niucloud.ErrNoToken
		}

		loaded, err := config.Load(a.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("load token file: %w", err)
		}
		cfg = loaded
		token = cfg.Token

		log.Debug().Str("path", a.TokenFile).Msg("Token loaded")
	}

	layout := a.TimeFormat
	if cfg != nil {
		serial = firstNonEmpty(serial, cfg.Serial)
		layout = firstNonEmpty(layout, cfg.TimeFormat)
	}
	if needSerial && serial == "" {
		return nil, ErrNoSerial
	}

	times, err := output.NewTimeFormatter(layout, a.location())
	if err != nil {
		return nil, err
	}

	return &session{
		client: a.newClient(token, cfg),
		times:  times,
		serial: serial,
	}, nil
}

// printRaw prints the payload as indented JSON or, with a filter, the
// selected values. It reports whether anything was printed.
func (a *App) printRaw(raw json.RawMessage, asJSON bool, filter string) (bool, error) {
	switch {
	case asJSON:
		return true, output.JSON(a.Stdout, raw)
	case filter != "":
		line, err := output.Filter(raw, filter)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(a.Stdout, line)
		return true, err
	}

	return false, nil
}

// emit writes a document to --out or stdout, minified on request.
func (a *App) emit(doc []byte, mediaType string, minify bool, path string) error {
	if minify {
		var err error
		if doc, err = output.Minify(mediaType, doc); err != nil {
			return err
		}
	}

	return output.Emit(a.Stdout, path, doc)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.Stdout, format, args...)
}

type option struct {
	name string
	set  bool
}

// onlyOne fails when more than one of the options is set.
func onlyOne(opts ...option) error {
	var set []string
	for _, o := range opts {
		if o.set {
			set = append(set, o.name)
		}
	}

	if len(set) > 1 {
		return fmt.Errorf("%w: only %s is possible", ErrConflictingOptions, strings.Join(set, " or "))
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
