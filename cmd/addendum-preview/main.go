package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/addendum"
	"github.com/nonprofittechy/ssioverpaymentwaiver/pkg/binding"
)

func main() {
	fieldsPath := flag.String("fields", "", "YAML file with field definitions (field_name, overflow_trigger)")
	message := flag.String("message", "(See addendum)", "marker appended to truncated values")
	width := flag.Int("width", 80, "input box width in characters")
	preserve := flag.Bool("preserve-newlines", false, "keep paragraph breaks in the safe value")
	flag.Parse()

	if *fieldsPath == "" {
		log.Fatal("missing -fields: pass a YAML file of field definitions")
	}

	file, err := os.Open(*fieldsPath)
	if err != nil {
		log.Fatalf("Failed to open field definitions: %v", err)
	}
	defer file.Close()

	values := binding.Map{}
	collection := addendum.NewCollection(values)
	if err := collection.LoadYAML(file); err != nil {
		log.Fatalf("Failed to load field definitions: %v", err)
	}
	if collection.Len() == 0 {
		log.Fatal("No field definitions found")
	}

	for _, field := range collection.Fields() {
		var answer string
		prompt := &survey.Multiline{
			Message: field.Name,
			Help:    fmt.Sprintf("overflow trigger: %s", field.Trigger),
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		values[field.Name] = answer
	}

	opts := []addendum.OptionFn{
		addendum.WithOverflowMessage(*message),
		addendum.WithInputWidth(*width),
		addendum.WithPreserveNewlines(*preserve),
	}

	for _, field := range collection.Fields() {
		fmt.Printf("\n== %s (trigger %s) ==\n", field.Name, field.Trigger)
		fmt.Printf("safe value:\n%s\n", indent(fmt.Sprint(field.SafeValue(opts...))))
		if !field.HasOverflow(opts...) {
			fmt.Println("no overflow")
			continue
		}
		fmt.Printf("overflow:\n%s\n", indent(fmt.Sprint(field.OverflowValue(opts...))))
	}

	if collection.HasOverflow(opts...) {
		fmt.Println("\nAn addendum page is needed for this form.")
	} else {
		fmt.Println("\nEverything fits; no addendum page needed.")
	}
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
