package config

import "os"

func IsDebug() bool {
	return os.Getenv("ASKBOT_DEBUG") == "1"
}
