package monitoring

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// portFromEnv reads the monitor port from SALTID_MONITOR_PORT. A .env
// file in the working directory is honored. An unset or unparsable
// value falls back to a random port.
func portFromEnv() int {
	_ = godotenv.Load()

	value := os.Getenv("SALTID_MONITOR_PORT")
	if value == "" {
		return 0
	}

	port, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(os.Stderr,
			"SALTID_MONITOR_PORT=%s is not a port number, "+
				"using a random port instead.\n", value)
		return 0
	}

	return port
}
