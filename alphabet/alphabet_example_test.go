package alphabet

import "fmt"

func ExampleParse() {
	symbols, err := Parse("ENIGMA")
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(symbols[0], uint8(symbols[0]), uint8(symbols[5]))
	// Output: E 4 0
}

func ExampleFromRune() {
	_, err := FromRune('e')
	fmt.Println(err)
	// Output: invalid symbol: 'e'
}
