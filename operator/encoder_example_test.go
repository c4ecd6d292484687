package operator

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xitonix/xenigma/settings"
)

func ExampleEncoder() {
	key, err := settings.ParseSheet("B | I II III | 01 01 01 | AAA")
	if err != nil {
		log.Fatal(err)
	}
	machine, err := key.Machine()
	if err != nil {
		log.Fatal(err)
	}

	var out bytes.Buffer
	encoder := NewEncoder(0, machine, Options{GroupSize: 5}, strings.NewReader("Hello World"), &out)
	if _, err := encoder.Encode(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.String())
	// Output: ILBDA AMTAZ
}

func ExampleEncoder_encodeContext() {
	key, err := settings.ParseSheet("B | II IV V | 02 21 12 | BLA | AV BS CG DL FU HZ IN KM OW RX")
	if err != nil {
		log.Fatal(err)
	}
	machine, err := key.Machine()
	if err != nil {
		log.Fatal(err)
	}

	input, err := os.Open("orders.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer input.Close()

	output, err := os.Create("orders.txt.enigma")
	if err != nil {
		log.Fatal(err)
	}
	defer output.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, err := NewEncoder(1024, machine, Options{GroupSize: 5}, input, output).EncodeContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(status)
}

func ExampleDecoder() {
	key, err := settings.ParseSheet("B | I II III | 01 01 01 | AAA")
	if err != nil {
		log.Fatal(err)
	}
	machine, err := key.Machine()
	if err != nil {
		log.Fatal(err)
	}

	var out bytes.Buffer
	decoder := NewDecoder(0, machine, Options{}, strings.NewReader("ILBDA AMTAZ"), &out)
	if _, err := decoder.Decode(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.String())
	// Output: HELLOWORLD
}
