package iocli

//go:generate moq -out io_mock.go . IO

// IO — консольный ввод-вывод клиента. Через него проходят все промпты
// редактирования маршрута, вывод статуса синхронизации и чтение ключа
// погодного API без эха. Write нужен для рендеринга документа через
// text/template.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
