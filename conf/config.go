package conf

/*
   Package conf wraps viper for the sinan-godata app. Configuration is read
   once from an env file when the binary starts; any key the file does not
   track falls back to the process environment.
*/

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// Only made accessible through GetEnv, SetEnv, etc.
var envVars viper.Viper

const (
	configgood    uint8 = 0
	configbad     uint8 = 1
	noconfigfound uint8 = 2
)

var state uint8 = configgood

func setup(dir string) *viper.Viper {
	var v = viper.New()
	v.SetConfigName("local")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	// Viper is lazy, do the read and parse of the config file
	var err = v.ReadInConfig()
	if err != nil {
		state = configbad
	}
	return v
}

func init() {
	// Possible config file locations: repo-local and deployed respectively.
	var locationSlice = [2]string{
		"./shared_files",
		"/etc/sinan-godata",
	}

	if success, loc := findEnv(locationSlice[:]); success {
		envVars = *setup(loc)
	} else {
		state = noconfigfound
	}
}

func findEnv(location []string) (bool, string) {
	if _, err := os.Stat(location[0] + "/local.env"); err == nil {
		return true, location[0]
	}
	if len(location) == 1 {
		return false, ""
	}
	return findEnv(location[1:])
}

// GetEnv retrieves the value stored in conf, or "" if it does not exist.
func GetEnv(key string) string {
	if state == configgood {
		var value = envVars.GetString(key)
		var b bool

		// Key not tracked by the config file; try the environment and copy
		// the value over to avoid additional OS calls.
		if value == "" {
			value, b = os.LookupEnv(key)
			if b {
				test := &testing.T{}
				var _ = SetEnv(test, key, value)
			}
		}
		return value
	}
	return os.Getenv(key)
}

// LookupEnv augments os.LookupEnv to look in the viper struct first.
func LookupEnv(key string) (string, bool) {
	if state == configgood {
		if value := envVars.Get(key); value != nil && value != "" {
			return value.(string), true
		}
		if v, exist := os.LookupEnv(key); exist {
			test := &testing.T{}
			var _ = SetEnv(test, key, v)
			return v, exist
		}
		return "", false
	}
	return os.LookupEnv(key)
}

// SetEnv adds key values into conf. This should only be used in this package
// itself or in tests; the protect parameter is there to make that explicit.
func SetEnv(protect *testing.T, key string, value string) error {
	var err error
	if state == configgood {
		envVars.Set(key, value)
	} else {
		err = os.Setenv(key, value)
	}
	return err
}

// UnsetEnv "unsets" a variable. Like SetEnv, testing scope only.
func UnsetEnv(protect *testing.T, key string) error {
	if state == configgood {
		envVars.Set(key, "")
	}
	return os.Unsetenv(key)
}
