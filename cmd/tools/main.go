package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/config"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/utils"
)

// Mints a development JWT for poking the API with curl.
func main() {
	studentID := flag.String("student", "", "student id to embed in the token")
	role := flag.String("role", "STUDENT", "role claim (STUDENT, TEACHER, PARENT, ADMIN)")
	flag.Parse()

	if *studentID == "" {
		log.Fatal("usage: tools -student <id> [-role ADMIN]")
	}

	config.LoadConfig()

	token, err := utils.GenerateToken(*studentID, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
