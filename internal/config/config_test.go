package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_PRETTY", "DB_PATH", "JWT_SECRET", "JWT_EXPIRES_HOURS", "CLIENT_ORIGIN", "WORDS_DIR"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Port != "5175" || c.LogLevel != "info" || c.LogPretty {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", c.TokenTTL)
	}
	if !c.InsecureSecret() {
		t.Error("default secret should be flagged")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9002")
	t.Setenv("LOG_PRETTY", "1")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_HOURS", "2")
	t.Setenv("WORDS_DIR", "/tmp/words")
	c := FromEnv()
	if c.Port != "9002" || !c.LogPretty || c.WordsDir != "/tmp/words" {
		t.Errorf("overrides not applied: %+v", c)
	}
	if c.TokenTTL != 2*time.Hour || c.InsecureSecret() {
		t.Errorf("token settings wrong: %+v", c)
	}

	t.Setenv("JWT_EXPIRES_HOURS", "-3")
	if FromEnv().TokenTTL != 24*time.Hour {
		t.Error("invalid ttl should fall back to the default")
	}
}
