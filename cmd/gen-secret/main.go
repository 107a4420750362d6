package main

import (
	"fmt"

	"github.com/tecaikids/website/internal/utils"
)

// Prints a value suitable for SESSION_SECRET.
func main() {
	fmt.Println(utils.RandomToken())
}
