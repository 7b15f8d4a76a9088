package platform

// Console UART pins (UART0). Board setups must leave them free.
const (
	ConsoleTX = 0
	ConsoleRX = 1
)
