package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()
	if cfg.Driver != "mysql" {
		t.Errorf("default Driver = %v, want mysql", cfg.Driver)
	}
	if cfg.Host != "localhost" {
		t.Errorf("default Host = %v, want localhost", cfg.Host)
	}
	if cfg.Port != 3306 {
		t.Errorf("default Port = %v, want 3306", cfg.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_PostgresPortDefault(t *testing.T) {
	v := viper.New()
	v.Set("driver", "postgres")
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := Get().Port; got != 5432 {
		t.Errorf("Port = %v, want 5432", got)
	}
}

func TestLoad_ExplicitPortKept(t *testing.T) {
	v := viper.New()
	v.Set("port", 33060)
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := Get().Port; got != 33060 {
		t.Errorf("Port = %v, want 33060", got)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DB_USER", "clinic")
	t.Setenv("DB_NAME", "orthoplus")
	t.Setenv("DB_HOST", "db.internal")

	v := viper.New()
	if err := Load(v); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := Get()
	if cfg.User != "clinic" {
		t.Errorf("User = %v, want clinic", cfg.User)
	}
	if cfg.Database != "orthoplus" {
		t.Errorf("Database = %v, want orthoplus", cfg.Database)
	}
	if cfg.Host != "db.internal" {
		t.Errorf("Host = %v, want db.internal", cfg.Host)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Driver: "mysql", User: "u", Database: "d"}, false},
		{"postgres", Config{Driver: "postgres", User: "u", Database: "d"}, false},
		{"missing user", Config{Driver: "mysql", Database: "d"}, true},
		{"missing database", Config{Driver: "mysql", User: "u"}, true},
		{"bad driver", Config{Driver: "oracle", User: "u", Database: "d"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
