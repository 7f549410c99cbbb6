package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Утилита для генерации bcrypt-хеша пароля администратора.
// Результат кладется в переменную окружения ADMIN_PASSWORD_HASH.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Использование: hashgen <пароль>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Ошибка генерации хеша: %v", err)
	}

	fmt.Println(string(hash))
}
