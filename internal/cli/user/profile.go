package user

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "smartlms"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagBaseURL      = "lms-url"
	FlagBaseURLUsage = "specify the base SmartLMS server URL"
)

// DefaultBaseURL is the SmartLMS server URL used when none is configured,
// it may be overridden at build time with -ldflags
var DefaultBaseURL = "http://localhost:8000/api"

// EnvFile is the dotenv file read for SMARTLMS_* variables
var EnvFile = ".env"

// Profile is the CLI profile.
// It is safe for concurrent use and serves as the session store of the SmartLMS client.
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs

	mu  sync.RWMutex
	cfg *viper.Viper
	env *viper.Viper
}

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

var _ api.SessionStore = (*Profile)(nil)

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile stored in the CLI home directory
func NewProfile(name string) (*Profile, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", err)
	}
	return NewProfileWithFs(name, dir, afero.NewOsFs()), nil
}

// NewProfileWithFs creates a new CLI profile stored in dir on the provided filesystem
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	cfg := viper.New()
	cfg.SetFs(fs)

	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   fs,
		cfg:  cfg,
		env:  env,
	}
}

// Load loads the CLI profile along with any dotenv file in the working directory
func (p *Profile) Load() error {
	if err := loadEnvFile(p.fs, EnvFile); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg.SetConfigName(p.Name)
	p.cfg.AddConfigPath(p.dir)
	p.cfg.SetConfigPermissions(0600)
	p.cfg.SetConfigType(ProfileType)

	if err := p.cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %w", err)
	}
	return nil
}

func loadEnvFile(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return err
	}

	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// variables already set in the environment take precedence
	for key, value := range env {
		if _, ok := os.LookupEnv(key); !ok {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.cfg.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags.
// The base URL comes from the flag, then SMARTLMS_BACKEND_URL,
// then the value last saved in the profile and finally DefaultBaseURL.
// The telemetry mode comes from the flag, then the saved value, and is off otherwise.
func (p *Profile) ResolveFlags() error {
	if p.Flags.BaseURL == "" {
		p.Flags.BaseURL = p.envString(keyBackendURL)
	}
	if p.Flags.BaseURL == "" {
		p.Flags.BaseURL = p.BaseURL()
	}
	if p.Flags.BaseURL == "" {
		p.Flags.BaseURL = DefaultBaseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)

	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = telemetry.ModeOff
	}
	p.SetTelemetryMode(p.Flags.TelemetryMode)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p *Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p *Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+ProfileType)
}

// Fs returns the filesystem the CLI profile is stored on
func (p *Profile) Fs() afero.Fs {
	return p.fs
}

// set of supported CLI profile keys
const (
	keyAccessToken  = "token"
	keyRefreshToken = "refresh"
	keyRole         = "role"
	keyUsername     = "username"
	keyFirstName    = "first_name"
	keyLastName     = "last_name"

	keyBaseURL       = "base_url"
	keyBackendURL    = "backend_url"
	keyTelemetryMode = "telemetry_mode"
)

var sessionKeys = []string{
	keyAccessToken,
	keyRefreshToken,
	keyRole,
	keyUsername,
	keyFirstName,
	keyLastName,
}

// GetString gets the specified CLI profile property
func (p *Profile) GetString(name string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg.GetString(p.propertyKey(name))
}

// SetString sets the specified CLI profile property
func (p *Profile) SetString(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Set(p.propertyKey(name), value)
}

// Clear clears the specified CLI profile property
func (p *Profile) Clear(name string) {
	p.SetString(name, "")
}

func (p *Profile) propertyKey(name string) string {
	return p.Name + "." + name
}

func (p *Profile) envString(name string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.env.GetString(name)
}

// Session gets the CLI profile session
func (p *Profile) Session() api.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return api.Session{
		AccessToken:  p.cfg.GetString(p.propertyKey(keyAccessToken)),
		RefreshToken: p.cfg.GetString(p.propertyKey(keyRefreshToken)),
	}
}

// SetSession sets the CLI profile session
func (p *Profile) SetSession(session api.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Set(p.propertyKey(keyAccessToken), session.AccessToken)
	p.cfg.Set(p.propertyKey(keyRefreshToken), session.RefreshToken)
}

// SetAccessToken sets the CLI profile access token
func (p *Profile) SetAccessToken(token string) {
	p.SetString(keyAccessToken, token)
}

// ClearSession clears the CLI profile session along with the logged in user
func (p *Profile) ClearSession() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, key := range sessionKeys {
		p.cfg.Set(p.propertyKey(key), "")
	}
}

// User gets the CLI profile logged in user
func (p *Profile) User() User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return User{
		Username:  p.cfg.GetString(p.propertyKey(keyUsername)),
		FirstName: p.cfg.GetString(p.propertyKey(keyFirstName)),
		LastName:  p.cfg.GetString(p.propertyKey(keyLastName)),
		Role:      Role(p.cfg.GetString(p.propertyKey(keyRole))),
	}
}

// SetUser sets the CLI profile logged in user
func (p *Profile) SetUser(user User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Set(p.propertyKey(keyUsername), user.Username)
	p.cfg.Set(p.propertyKey(keyFirstName), user.FirstName)
	p.cfg.Set(p.propertyKey(keyLastName), user.LastName)
	p.cfg.Set(p.propertyKey(keyRole), string(user.Role))
}

// BaseURL gets the CLI profile SmartLMS base url
func (p *Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile SmartLMS base url
func (p *Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}

// TelemetryMode gets the CLI profile telemetry mode
func (p *Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// SetTelemetryMode sets the CLI profile telemetry mode
func (p *Profile) SetTelemetryMode(mode telemetry.Mode) {
	p.SetString(keyTelemetryMode, mode.String())
}
