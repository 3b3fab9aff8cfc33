// internal/platform/config/config.go
package config

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"webchain/internal/adapters/ai"
	"webchain/internal/core/domain"
	"webchain/internal/core/usecases"
	"webchain/internal/platform/errors"
	"webchain/internal/stages"
)

const (
	// EnvPrefix es el prefijo de todas las variables de entorno
	EnvPrefix = "WEBCHAIN_"

	// DefaultOutputDir es el directorio de salida por defecto
	DefaultOutputDir = "recon-output"

	// DefaultProxy es el valor de --proxy sin argumento (Burp)
	DefaultProxy = "127.0.0.1:8080"
)

type Config struct {
	// Input
	Domain    string
	InputFile string

	// IO
	OutputDir    string
	SettingsPath string

	// Ejecución
	Proxy         string
	DryRun        bool
	AIOverview    bool
	SkipToolCheck bool

	// UI
	Verbose      bool
	NoColor      bool
	PrintVersion bool
	ShowHelp     bool

	// Settings viene del archivo YAML (y se puede pisar con env/flags)
	Settings Settings
}

// Settings es el contenido del archivo --settings.
type Settings struct {
	Stages stages.Settings `yaml:"stages"`
	Tools  Tools           `yaml:"tools"`
	Policy Policy          `yaml:"policy"`
	AI     AI              `yaml:"ai"`
}

// Tools configura la verificación de herramientas.
type Tools struct {
	// Manager es el binario que lista el inventario (pdtm)
	Manager string `yaml:"manager"`

	// Required son las herramientas que se reconcilian, en orden
	Required []string `yaml:"required"`
}

// Policy agrupa las políticas de la cadena.
type Policy struct {
	Resume  bool                   `yaml:"resume"`
	Failure usecases.FailurePolicy `yaml:"failure"`
}

// AI configura el informe de IA.
type AI struct {
	Model     string  `yaml:"model"`
	Endpoint  string  `yaml:"endpoint"`
	TimeoutS  int     `yaml:"timeout_seconds"`
	Retries   int     `yaml:"retries"`
	MaxURLs   int     `yaml:"max_urls"`
	RateLimit float64 `yaml:"rate_limit"`

	// APIKey solo llega por entorno; nunca desde el YAML
	APIKey string `yaml:"-"`
}

// Timeout devuelve el timeout de la API como time.Duration.
func (a AI) Timeout() time.Duration {
	if a.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutS) * time.Second
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	required := make([]string, len(domain.RequiredTools))
	copy(required, domain.RequiredTools)

	return Config{
		OutputDir: DefaultOutputDir,
		Settings: Settings{
			Stages: stages.DefaultSettings(),
			Tools: Tools{
				Manager:  "pdtm",
				Required: required,
			},
			Policy: Policy{
				Failure: usecases.ContinueOnFailure,
			},
			AI: AI{
				Model:    ai.DefaultModel,
				Endpoint: ai.DefaultEndpoint,
				TimeoutS: 120,
				Retries:  2,
				MaxURLs:  2000,
			},
		},
	}
}

// cliFlags guarda los valores crudos de los flags; solo se aplican los que
// el operador pasó explícitamente.
type cliFlags struct {
	domain, inputFile, out, proxy, settings string
	dryRun, ai, resume, abort, skipCheck    bool
	verbose, noColor, version, help         bool
}

// Load inicializa la configuración: defaults -> settings YAML -> ENV -> FLAGS.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	var fl cliFlags
	fs := newFlagSet(&fl)
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return cfg, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if fs.NArg() > 0 {
		return cfg, errors.Wrapf(errors.ErrInvalidInput, "unexpected argument %q", fs.Arg(0))
	}

	// El archivo de settings se resuelve antes que el resto
	cfg.SettingsPath = getenv(EnvPrefix+"SETTINGS", "")
	if fs.Changed("settings") {
		cfg.SettingsPath = fl.settings
	}
	if cfg.SettingsPath != "" {
		if err := LoadSettings(cfg.SettingsPath, &cfg.Settings); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	applyFlags(fs, &fl, &cfg)
	normalize(&cfg)

	return cfg, nil
}

func newFlagSet(fl *cliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("webchain", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.StringVarP(&fl.domain, "domain", "d", "", "Single target domain")
	fs.StringVarP(&fl.inputFile, "input-file", "i", "", "File with one domain per line")
	fs.StringVarP(&fl.out, "out", "o", DefaultOutputDir, "Output directory")
	fs.StringVar(&fl.proxy, "proxy", "", "HTTP proxy for httpx and katana (host:port)")
	fs.Lookup("proxy").NoOptDefVal = DefaultProxy
	fs.BoolVar(&fl.dryRun, "dry-run", false, "Print the commands without executing them")
	fs.BoolVarP(&fl.ai, "ai-overview", "a", false, "Send discovered URLs to Gemini for analysis")
	fs.BoolVar(&fl.resume, "resume", false, "Skip stages whose output file already has content")
	fs.BoolVar(&fl.abort, "abort-on-failure", false, "Stop a domain's chain when a stage fails")
	fs.BoolVar(&fl.skipCheck, "skip-tool-check", false, "Do not inspect or remediate the tool inventory")
	fs.StringVar(&fl.settings, "settings", "", "YAML settings file")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "Debug logging")
	fs.BoolVar(&fl.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&fl.version, "version", false, "Print version information and exit")
	fs.BoolVarP(&fl.help, "help", "h", false, "Show this help message")

	return fs
}

// normalizeArgs convierte "--proxy host:port" en "--proxy=host:port": con
// NoOptDefVal pflag solo acepta la forma con '='.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if a == "--proxy" && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, "--proxy="+args[i+1])
			i++
			continue
		}
		out = append(out, a)
	}
	return out
}

// LoadSettings decodifica el YAML en path sobre s (los campos ausentes
// conservan su valor).
func LoadSettings(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrapf(errors.ErrNotFound, "settings file %s", path)
	}
	if err != nil {
		return errors.Wrapf(err, "read settings %s", path)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "parse settings %s: %v", path, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvPrefix+"DOMAIN", ""); v != "" {
		cfg.Domain = v
	}
	if v := getenv(EnvPrefix+"INPUT_FILE", ""); v != "" {
		cfg.InputFile = v
	}
	if v := getenv(EnvPrefix+"OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv(EnvPrefix+"PROXY", ""); v != "" {
		cfg.Proxy = v
	}
	if v := getenv(EnvPrefix+"DRY_RUN", ""); v != "" {
		cfg.DryRun = parseBool(v)
	}
	if v := getenv(EnvPrefix+"AI_OVERVIEW", ""); v != "" {
		cfg.AIOverview = parseBool(v)
	}
	if v := getenv(EnvPrefix+"SKIP_TOOL_CHECK", ""); v != "" {
		cfg.SkipToolCheck = parseBool(v)
	}
	if v := getenv(EnvPrefix+"NO_COLOR", ""); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}

	// Policies
	if v := getenv(EnvPrefix+"RESUME", ""); v != "" {
		cfg.Settings.Policy.Resume = parseBool(v)
	}
	if v := getenv(EnvPrefix+"FAILURE_POLICY", ""); v != "" {
		cfg.Settings.Policy.Failure = usecases.FailurePolicy(strings.ToLower(strings.TrimSpace(v)))
	}

	// Stages
	if v := getenv(EnvPrefix+"RESOLVER", ""); v != "" {
		cfg.Settings.Stages.Resolver = v
	}
	if v := getenv(EnvPrefix+"NAABU_PORTS", ""); v != "" {
		cfg.Settings.Stages.NaabuPorts = v
	}

	// AI
	if v := getenv(EnvPrefix+"GEMINI_MODEL", ""); v != "" {
		cfg.Settings.AI.Model = v
	}
	if v := getenv(EnvPrefix+"GEMINI_TIMEOUT", ""); v != "" {
		cfg.Settings.AI.TimeoutS = parseInt(v, cfg.Settings.AI.TimeoutS)
	}
	if v := getenv(EnvPrefix+"GEMINI_API_KEY", ""); v != "" {
		cfg.Settings.AI.APIKey = v
	}
}

// applyFlags aplica los flags que el operador pasó (tienen prioridad sobre ENV).
func applyFlags(fs *pflag.FlagSet, fl *cliFlags, cfg *Config) {
	if fs.Changed("domain") {
		cfg.Domain = fl.domain
	}
	if fs.Changed("input-file") {
		cfg.InputFile = fl.inputFile
	}
	if fs.Changed("out") {
		cfg.OutputDir = fl.out
	}
	if fs.Changed("proxy") {
		cfg.Proxy = fl.proxy
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = fl.dryRun
	}
	if fs.Changed("ai-overview") {
		cfg.AIOverview = fl.ai
	}
	if fs.Changed("resume") {
		cfg.Settings.Policy.Resume = fl.resume
	}
	if fs.Changed("abort-on-failure") && fl.abort {
		cfg.Settings.Policy.Failure = usecases.AbortOnFailure
	}
	if fs.Changed("skip-tool-check") {
		cfg.SkipToolCheck = fl.skipCheck
	}
	if fs.Changed("no-color") {
		cfg.NoColor = fl.noColor
	}
	cfg.Verbose = fl.verbose
	cfg.PrintVersion = fl.version
	cfg.ShowHelp = fl.help
}

func normalize(c *Config) {
	c.Domain = strings.TrimSpace(c.Domain)
	c.InputFile = strings.TrimSpace(c.InputFile)
	c.Proxy = strings.TrimSpace(c.Proxy)
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Settings.Policy.Failure == "" {
		c.Settings.Policy.Failure = usecases.ContinueOnFailure
	}
	if c.Settings.Tools.Manager == "" {
		c.Settings.Tools.Manager = "pdtm"
	}
	if len(c.Settings.Tools.Required) == 0 {
		c.Settings.Tools.Required = append([]string(nil), domain.RequiredTools...)
	}
	if c.Settings.AI.Model == "" {
		c.Settings.AI.Model = ai.DefaultModel
	}
	if c.Settings.AI.Endpoint == "" {
		c.Settings.AI.Endpoint = ai.DefaultEndpoint
	}
	if c.Settings.AI.Retries < 0 {
		c.Settings.AI.Retries = 0
	}
}

// Validate verifica las combinaciones de entrada. Los errores envuelven
// ErrInvalidInput.
func (c Config) Validate() error {
	switch {
	case c.Domain == "" && c.InputFile == "":
		return errors.Wrap(errors.ErrInvalidInput, "provide a domain (-d) or an input file (-i)")
	case c.Domain != "" && c.InputFile != "":
		return errors.Wrap(errors.ErrInvalidInput, "-d/--domain and -i/--input-file are mutually exclusive")
	}

	if !c.Settings.Policy.Failure.IsValid() {
		return errors.Wrapf(errors.ErrInvalidInput, "unknown failure policy %q (use continue or abort)", c.Settings.Policy.Failure)
	}

	if c.Proxy != "" {
		if err := validateProxy(c.Proxy); err != nil {
			return err
		}
	}

	for _, name := range c.Settings.Tools.Required {
		if strings.TrimSpace(name) == "" {
			return errors.Wrap(errors.ErrInvalidInput, "empty name in tools.required")
		}
	}
	return nil
}

// validateProxy acepta "host:port" o una URL con esquema y puerto.
func validateProxy(proxy string) error {
	hostport := proxy
	if i := strings.Index(proxy, "://"); i >= 0 {
		hostport = strings.TrimSuffix(proxy[i+3:], "/")
	}
	host, port, err := net.SplitHostPort(hostport)
	if err != nil || host == "" {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid proxy %q (expected host:port)", proxy)
	}
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid proxy port in %q", proxy)
	}
	return nil
}

// String resume la configuración efectiva (sin secretos) para logs de debug.
func (c Config) String() string {
	return fmt.Sprintf("Config{domain=%q, input=%q, out=%q, proxy=%q, dry_run=%t, ai=%t, resume=%t, failure=%s}",
		c.Domain, c.InputFile, c.OutputDir, c.Proxy, c.DryRun, c.AIOverview,
		c.Settings.Policy.Resume, c.Settings.Policy.Failure)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
