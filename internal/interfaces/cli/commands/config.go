// Package commands implements the mrpplan CLI's command tree: cobra
// commands whose flags fall back to viper-resolved environment values.
package commands

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

const envPrefix = "MRPPLAN"

// loadViper loads an optional .env file into the environment and
// returns a viper instance that reads MRPPLAN_-prefixed environment
// variables. Flags are not bound to it; commands consult it only when
// a flag is left empty.
func loadViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// resolveAsOf picks the "today" used to split expedites from future
// purchases: an explicit date flag wins, then MRPPLAN_AS_OF_DATE, then
// wall-clock "now" truncated to midnight UTC. The legacy convention
// (earliest demand date) is never chosen here; it is opted into per
// run via asOfPolicy and resolved later by the orchestrator when
// AsOfDate is left zero.
func resolveAsOf(flagValue string, v *viper.Viper) (time.Time, error) {
	raw := flagValue
	if raw == "" {
		raw = v.GetString("as_of_date")
	}
	if raw == "" {
		return entities.Truncate(time.Now()), nil
	}
	return time.Parse("2006-01-02", raw)
}
