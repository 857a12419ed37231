package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty root returns ErrRootEmpty",
			config:  Config{Root: "", LogLevel: "warn"},
			wantErr: ErrRootEmpty,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{Root: "animals", LogLevel: "chatty"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "empty log level is rejected",
			config:  Config{Root: "animals", LogLevel: ""},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "upper case log level is accepted",
			config:  Config{Root: "animals", LogLevel: "DEBUG"},
			wantErr: nil,
		},
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
