package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//Config keeps the launch parameters of the run. Every field can be set
//by a command-line flag or a BALTRJ_* environment variable; the
//defaults reproduce the reference trajectory.
type Config struct {
	Speed            float64 `mapstructure:"speed"`
	Angle            float64 `mapstructure:"angle"`
	TerminalVelocity float64 `mapstructure:"terminal-velocity"`
	Duration         float64 `mapstructure:"duration"`
	Interval         float64 `mapstructure:"interval"`
	Plot             string  `mapstructure:"plot"`
}

func loadConfig() Config {
	pflag.Float64("speed", 100, "launch speed in m/s")
	pflag.Float64("angle", 45, "launch angle above the horizon in degrees")
	pflag.Float64("terminal-velocity", 150, "projectile terminal velocity in m/s")
	pflag.Float64("duration", 30, "duration of the simulation in seconds")
	pflag.Float64("interval", 0.5, "sampling interval in seconds")
	pflag.String("plot", "", "write a PNG plot of the trajectory to this file")
	pflag.Parse()

	viper.SetEnvPrefix("BALTRJ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(pflag.CommandLine)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
