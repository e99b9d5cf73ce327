package manager

import "fmt"

// Greeting welcomes a caller by name. The name is used verbatim.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to the Employee Manager. How can I assist you today?", name)
}
