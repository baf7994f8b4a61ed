package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every variable ApplyEnv reads.
const EnvPrefix = "BALLS_"

// ApplyEnv overlays BALLS_* environment variables on c, e.g. BALLS_WIDTH=800 or
// BALLS_TICK=30ms. Unset variables leave the field alone; malformed ones are reported.
func ApplyEnv(c *Config) error {
	var bad []string
	check := func(name string, err error) {
		if err != nil {
			bad = append(bad, EnvPrefix+name)
		}
	}
	check("WIDTH", envInt("WIDTH", &c.Window.Width))
	check("HEIGHT", envInt("HEIGHT", &c.Window.Height))
	check("FPS", envInt("FPS", &c.Window.TargetFPS))
	check("TICK", envDuration("TICK", &c.Physics.Tick))
	check("GRAVITY", envFloat("GRAVITY", &c.Physics.Gravity))
	check("COUNT", envInt("COUNT", &c.Balls.Count))
	check("DIAMETER", envInt("DIAMETER", &c.Balls.Diameter))
	check("SEED", envInt64("SEED", &c.Balls.Seed))
	check("SPIN", envBool("SPIN", &c.Balls.Spin))
	if v, ok := lookup("SPRITE"); ok {
		c.Balls.Sprite = v
	}
	if v, ok := lookup("TITLE"); ok {
		c.Window.Title = v
	}
	if len(bad) > 0 {
		return fmt.Errorf("config: malformed environment: %s", strings.Join(bad, ", "))
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envInt(name string, dst *int) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func envInt64(name string, dst *int64) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func envFloat(name string, dst *float64) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func envDuration(name string, dst *time.Duration) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
