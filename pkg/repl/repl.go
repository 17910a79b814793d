// Package repl implements the interactive schedule menu over any reader/writer pair.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursedb/pkg/schedule"
)

const Menu = "\nMenu:\n" +
	"1. Print Schedule\n" +
	"2. Find by Subject\n" +
	"3. Find by Subject and Catalog\n" +
	"4. Find by Instructor Last Name\n" +
	"0. Exit\n" +
	"Enter your choice: "

const (
	ChoiceExit = iota
	ChoicePrint
	ChoiceSubject
	ChoiceSubjectCatalog
	ChoiceInstructor
)

const (
	farewell      = "Exiting program."
	invalidChoice = "Invalid choice. Try again."
)

type Session struct {
	sched *schedule.Schedule
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(sched *schedule.Schedule, in io.Reader, out io.Writer) *Session {
	return &Session{
		sched: sched,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run is shorthand for NewSession(sched, in, out).Run().
func Run(in io.Reader, out io.Writer, sched *schedule.Schedule) error {
	return NewSession(sched, in, out).Run()
}

// Run loops until the exit choice or the end of input.
// Only read errors from the input are returned.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, Menu)
		line, ok := s.readLine()
		if !ok {
			// End of input is not an exit choice: no farewell is printed.
			return s.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = -1
		}

		switch choice {
		case ChoicePrint:
			s.printItems(s.sched.All())
		case ChoiceSubject:
			ok = s.handleSubject()
		case ChoiceSubjectCatalog:
			ok = s.handleSubjectCatalog()
		case ChoiceInstructor:
			ok = s.handleInstructor()
		case ChoiceExit:
			fmt.Fprintln(s.out, farewell)
			return nil
		default:
			fmt.Fprintln(s.out, invalidChoice)
		}
		if !ok {
			return s.in.Err()
		}
	}
}

func (s *Session) handleSubject() bool {
	subject, ok := s.prompt("Enter Subject: ")
	if !ok {
		return false
	}
	s.printItems(s.sched.FindBySubject(subject))
	return true
}

func (s *Session) handleSubjectCatalog() bool {
	subject, ok := s.prompt("Enter Subject: ")
	if !ok {
		return false
	}
	catalog, ok := s.prompt("Enter Catalog: ")
	if !ok {
		return false
	}
	s.printItems(s.sched.FindBySubjectAndCatalog(subject, catalog))
	return true
}

func (s *Session) handleInstructor() bool {
	lastName, ok := s.prompt("Enter Instructor's Last Name: ")
	if !ok {
		return false
	}
	s.printItems(s.sched.FindByInstructorLastName(lastName))
	return true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), true
}

func (s *Session) printItems(items []schedule.Item) {
	for _, it := range items {
		fmt.Fprintln(s.out, it.String())
	}
}
