package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"go-railway-admin/internal/validation"
)

// prompter reads validated console input. Numeric prompts accept 0 to go
// back and string prompts accept "back"; in both cases ok is false.
type prompter struct {
	in *bufio.Reader
}

func newPrompter(in *bufio.Reader) *prompter {
	return &prompter{in: in}
}

func (p *prompter) line() string {
	text, _ := p.in.ReadString('\n')
	return strings.TrimSpace(text)
}

func (p *prompter) readInt(prompt string, min, max int, allowBack bool) (int, bool) {
	for {
		if allowBack {
			fmt.Printf("%s (0 to go back): ", prompt)
		} else {
			fmt.Printf("%s: ", prompt)
		}

		input := p.line()
		if allowBack && input == "0" {
			return 0, false
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid number.")
			continue
		}
		if value < min || value > max {
			fmt.Printf("Please enter a number between %d and %d\n", min, max)
			continue
		}
		return value, true
	}
}

func (p *prompter) readFloat(prompt string, min float64, allowBack bool) (float64, bool) {
	for {
		if allowBack {
			fmt.Printf("%s (0 to go back): ", prompt)
		} else {
			fmt.Printf("%s: ", prompt)
		}

		input := p.line()
		if allowBack && input == "0" {
			return 0, false
		}

		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid number.")
			continue
		}
		if value < min {
			fmt.Printf("Please enter a number greater than or equal to %g\n", min)
			continue
		}
		return value, true
	}
}

func (p *prompter) readString(prompt string, minLength int, allowBack bool) (string, bool) {
	for {
		if allowBack {
			fmt.Printf("%s (enter 'back' to return): ", prompt)
		} else {
			fmt.Printf("%s: ", prompt)
		}

		input := p.line()
		if allowBack && strings.EqualFold(input, "back") {
			return "", false
		}
		if len(input) < minLength {
			fmt.Printf("Input must be at least %d characters long.\n", minLength)
			continue
		}
		return input, true
	}
}

func (p *prompter) readTime(prompt string) (string, bool) {
	for {
		fmt.Printf("%s (HH:MM, enter 'back' to return): ", prompt)

		input := p.line()
		if strings.EqualFold(input, "back") {
			return "", false
		}
		if !validation.IsValidTime(input) {
			fmt.Println("Invalid time format. Please use HH:MM (24-hour format).")
			continue
		}
		return validation.NormalizeTime(input), true
	}
}

func (p *prompter) readYesNo(prompt string) bool {
	for {
		fmt.Printf("%s (Y/N): ", prompt)

		switch strings.ToUpper(p.line()) {
		case "Y":
			return true
		case "N":
			return false
		default:
			fmt.Println("Please enter Y for Yes or N for No.")
		}
	}
}

func (p *prompter) pause() {
	fmt.Println("Press Enter to continue...")
	p.line()
}
