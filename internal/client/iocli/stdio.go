package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх стандартных потоков процесса.
type Stdio struct{}

func NewStdio() IO {
	return &Stdio{}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (s *Stdio) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	return readLine()
}

// ReadPassword читает секрет без эха. Если stdin не терминал
// (ключ подают через pipe: `echo key | tripkeeper configure`),
// читаем обычную строку.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine()
	}
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func readLine() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
