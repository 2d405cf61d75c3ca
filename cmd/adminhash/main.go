// Command adminhash prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/adminhash 's3cret'
//	echo -n 's3cret' | go run ./cmd/adminhash
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/oggyb/portfolio-inbox/internal/auth"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewDevelopment()
	defer func() { _ = log.Sync() }()

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal("read password from stdin", zap.Error(err))
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("hash password", zap.Error(err))
	}
	fmt.Println(hash)
}
