package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"venograph/utils"
)

// Prints one fresh 32-character lowercase hex credential for the relay's
// api_key header. No arguments, no configuration.
func main() {
	key, err := utils.GenerateAPIKey()
	if err != nil {
		log.Fatal("cannot read from the system random source: ", err)
	}
	fmt.Println(key)
}
