package config

import (
	"strconv"

	"github.com/spf13/pflag"
)

// registers the command line overrides on fs.
// flags are applied with ApplyFlags after parsing so unset flags keep env values.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("host", DefaultHost, "interface to bind")
	fs.Int("port", DefaultPort, "port to listen on")
	fs.String("static-dir", DefaultStaticDir, "directory holding index.html and front end assets")
}

// copies every flag the user actually set into cfg
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	if fs.Changed("host") {
		host, err := fs.GetString("host")
		if err != nil {
			return err
		}

		cfg.Host = host
	}

	if fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return err
		}

		if _, err := ParsePort(strconv.Itoa(port)); err != nil {
			return err
		}

		cfg.Port = port
	}

	if fs.Changed("static-dir") {
		dir, err := fs.GetString("static-dir")
		if err != nil {
			return err
		}

		cfg.StaticDir = dir
	}

	return nil
}
