package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"modern-hotel/models"
	"modern-hotel/utils"
)

// prompter wraps the input/output streams for the interactive menu. Reading
// from an io.Reader instead of os.Stdin directly keeps the loop testable.
// Once input hits EOF every prompt returns its zero value so the validation
// loops cannot spin.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// readLine prompts and returns the trimmed input line. A closed stdin reads
// as a blank answer and flags eof.
func (p *prompter) readLine(prompt string) string {
	if p.eof {
		return ""
	}
	p.printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(line)
}

// promptRoomType loops until a valid room type is entered.
func (p *prompter) promptRoomType() models.RoomType {
	for !p.eof {
		raw := p.readLine("Enter room type (Single/Double/Suite): ")
		rt, err := models.ParseRoomType(raw)
		if err == nil {
			return rt
		}
		p.println("Invalid room type. Please enter Single, Double, or Suite.")
	}
	return ""
}

// promptOptionalRoomType is the edit-flow variant: blank keeps the current
// value and returns nil.
func (p *prompter) promptOptionalRoomType() *models.RoomType {
	for !p.eof {
		raw := p.readLine("Enter new room type (Single/Double/Suite) or leave blank: ")
		if raw == "" {
			return nil
		}
		rt, err := models.ParseRoomType(raw)
		if err == nil {
			return &rt
		}
		p.println("Invalid room type. Please enter Single, Double, or Suite.")
	}
	return nil
}

// promptCheckInDate offers today / tomorrow / a custom YYYY-MM-DD date and
// loops until one is picked.
func (p *prompter) promptCheckInDate() time.Time {
	for !p.eof {
		today := utils.Today()
		p.println("Select Check-in Date:")
		p.printf("1. Today (%s)\n", utils.FormatDate(today))
		p.printf("2. Tomorrow (%s)\n", utils.FormatDate(today.AddDate(0, 0, 1)))
		p.println("3. Enter custom date")

		switch p.readLine("Choice: ") {
		case "1":
			return today
		case "2":
			return today.AddDate(0, 0, 1)
		case "3":
			for !p.eof {
				raw := p.readLine("Enter check-in date (YYYY-MM-DD): ")
				d, err := utils.ParseDate(raw)
				if err == nil {
					return d
				}
				p.println("Invalid format. Please enter in YYYY-MM-DD.")
			}
		default:
			p.println("Invalid choice. Try again.")
		}
	}
	return time.Time{}
}

// promptOptionalDate parses a YYYY-MM-DD date, blank keeping the current
// value.
func (p *prompter) promptOptionalDate(prompt string) *time.Time {
	for !p.eof {
		raw := p.readLine(prompt)
		if raw == "" {
			return nil
		}
		d, err := utils.ParseDate(raw)
		if err == nil {
			return &d
		}
		p.println("Invalid format. Please enter in YYYY-MM-DD.")
	}
	return nil
}

// promptPositiveInt loops until a positive integer is entered.
func (p *prompter) promptPositiveInt(prompt string) int {
	for !p.eof {
		raw := p.readLine(prompt)
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.println("Invalid number. Please enter a valid integer.")
			continue
		}
		if n <= 0 {
			p.println("Please enter a positive number.")
			continue
		}
		return n
	}
	return 0
}

// promptOptionalPositiveInt is the edit-flow variant: blank returns nil.
func (p *prompter) promptOptionalPositiveInt(prompt string) *int {
	for !p.eof {
		raw := p.readLine(prompt)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.println("Invalid number. Please enter a valid integer.")
			continue
		}
		if n <= 0 {
			p.println("Please enter a positive number.")
			continue
		}
		return &n
	}
	return nil
}
