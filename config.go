package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Seednode/tabugo/games/tabu"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Subscription tiers. Only paid tiers keep game history.
const (
	tierFree  = "free"
	tierPlus  = "plus"
	tierElite = "elite"
)

type Config struct {
	adminToken     string
	bind           string
	db             string
	language       string
	port           int
	prefix         string
	profile        bool
	seed           uint64
	sessionTimeout time.Duration
	tier           string
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool

	log zerolog.Logger
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.sessionTimeout < 0 {
		return fmt.Errorf("invalid session timeout (must not be negative): %s", c.sessionTimeout)
	}

	c.tier = strings.ToLower(strings.TrimSpace(c.tier))
	switch c.tier {
	case tierFree, tierPlus, tierElite:
	default:
		return fmt.Errorf("invalid tier (must be one of %s, %s, %s): %q", tierFree, tierPlus, tierElite, c.tier)
	}

	if catalog := tabu.DefaultCatalog(); !catalog.Supports(c.language) {
		return fmt.Errorf("unsupported language (must be one of %s): %q", strings.Join(catalog.Languages(), ", "), c.language)
	}

	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// keepsHistory reports whether finished games are archived.
func (c *Config) keepsHistory() bool {
	return c.tier != tierFree
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TABUGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "tabugo",
		Short:         "A two-team word-guessing party game, served over websockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			cfg.log = newLogger(cfg)
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.adminToken, "admin-token", "", "bearer token required by DELETE /history, clearing is disabled if empty (env: TABUGO_ADMIN_TOKEN)")
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: TABUGO_BIND)")
	fs.StringVar(&cfg.db, "db", "", "path to sqlite database for game history, in-memory if empty (env: TABUGO_DB)")
	fs.StringVar(&cfg.language, "language", "en", "default deck language for new tables (env: TABUGO_LANGUAGE)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: TABUGO_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: TABUGO_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: TABUGO_PROFILE)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for card dealing, random if 0 (env: TABUGO_SEED)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle tables are closed (env: TABUGO_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tier, "tier", tierPlus, "subscription tier: free, plus or elite; free keeps no history (env: TABUGO_TIER)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: TABUGO_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: TABUGO_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: TABUGO_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: TABUGO_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("tabugo v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
