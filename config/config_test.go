package config

import (
	"testing"

	"github.com/spf13/viper"

	"extensible-calendar/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment.Name != model.EnvironmentDevelopment {
		t.Errorf("environment = %q, want development", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Calendar.DefaultTimezone != "UTC" {
		t.Errorf("default timezone = %q", cfg.Calendar.DefaultTimezone)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMin != 600 {
		t.Errorf("unexpected rate limit config %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.ClientRetention.Minutes() != 5 {
		t.Errorf("client retention = %v", cfg.RateLimit.ClientRetention)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("CALENDAR_DEFAULT_NAME", "Work")
	t.Setenv("CALENDAR_DEFAULT_TIMEZONE", "America/New_York")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.Calendar.DefaultName != "Work" || cfg.Calendar.DefaultTimezone != "America/New_York" {
		t.Errorf("calendar config = %+v", cfg.Calendar)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				Environment: EnvironmentConfig{Name: model.EnvironmentProduction},
				HTTPServer:  HTTPServerConfig{Port: 8080},
				Calendar:    CalendarConfig{DefaultName: "Work", DefaultTimezone: "UTC"},
			},
		},
		{
			name:    "unknown environment",
			cfg:     Config{Environment: EnvironmentConfig{Name: "staging"}, HTTPServer: HTTPServerConfig{Port: 8080}},
			wantErr: true,
		},
		{
			name:    "bad port",
			cfg:     Config{HTTPServer: HTTPServerConfig{Port: 0}},
			wantErr: true,
		},
		{
			name:    "bad default timezone",
			cfg:     Config{HTTPServer: HTTPServerConfig{Port: 8080}, Calendar: CalendarConfig{DefaultName: "Work", DefaultTimezone: "Nowhere/City"}},
			wantErr: true,
		},
		{
			name:    "rate limit without budget",
			cfg:     Config{HTTPServer: HTTPServerConfig{Port: 8080}, RateLimit: RateLimitConfig{Enabled: true}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
