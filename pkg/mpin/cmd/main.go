package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrymomot/pinkit/pkg/mpin"
)

func main() {
	pin := flag.String("pin", "", "PIN to classify (4 or 6 digits)")
	dobSelf := flag.String("dob", "", "own date of birth, YYYY-MM-DD")
	dobSpouse := flag.String("spouse-dob", "", "spouse date of birth, YYYY-MM-DD")
	anniversary := flag.String("anniversary", "", "anniversary date, YYYY-MM-DD")
	flag.Parse()

	if *pin == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := mpin.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	classifier := mpin.NewFromConfig(cfg)

	demo := mpin.Demographics{
		DOBSelf:     parseDate(*dobSelf, "dob"),
		DOBSpouse:   parseDate(*dobSpouse, "spouse-dob"),
		Anniversary: parseDate(*anniversary, "anniversary"),
	}

	verdict := classifier.Classify(*pin, demo)

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode verdict: %v", err)
	}
	fmt.Println(string(out))
}

func parseDate(s, name string) *mpin.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Invalid -%s value %q: %v", name, s, err)
	}
	d, err := mpin.NewDate(t.Year(), t.Month(), t.Day())
	if err != nil {
		log.Fatalf("Invalid -%s value %q: %v", name, s, err)
	}
	return &d
}
