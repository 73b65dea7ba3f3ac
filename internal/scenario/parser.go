// Copyright (c) 2016 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// This file reads check files. A check file lists scenarios, each a set of
// expressions with an assertion on their outcome, optionally repeated for
// every row of a runs table whose <VAR> placeholders are substituted into
// the checks before they are parsed.

package scenario

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/silvioduka/Expression-Evaluation/internal/evaluator"
)

// DefaultTolerance is used when a check file does not set one.
const DefaultTolerance = 1e-9

// fileYaml is used to unmarshal the check files.
type fileYaml struct {
	Tolerance *float64
	Scenarios []*scenarioYaml
}

// scenarioYaml captures the information of a scenario.
type scenarioYaml struct {
	Name   string
	Desc   string
	Checks []string
	Runs   [][]string
}

// ParseFile reads and parses the check file at path.
func ParseFile(path string) ([]*Scenario, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read check file")
	}
	scns, err := Parse(bts)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return scns, nil
}

// Parse turns the yaml contents of a check file into scenarios.
func Parse(bts []byte) (scns []*Scenario, err error) {
	defer func() {
		if r := recover(); r != nil {
			scns = nil
			err = errors.New(fmt.Sprint(r))
		}
	}()

	file := &fileYaml{}
	err = yaml.Unmarshal(bts, file)
	if err != nil {
		panic("failed to unmarshal check yaml: " + err.Error())
	}

	tolerance := DefaultTolerance
	if file.Tolerance != nil {
		tolerance = *file.Tolerance
		if tolerance < 0 {
			panic(fmt.Sprintf("tolerance %v must not be negative", tolerance))
		}
	}

	scns = extractScenarios(file, tolerance)
	return scns, nil
}

// extractScenarios returns a scenario for every element in the runs list.
func extractScenarios(file *fileYaml, tolerance float64) []*Scenario {
	var result []*Scenario
	for _, scenarioData := range file.Scenarios {
		if len(scenarioData.Runs) == 0 {
			result = append(result, extractScenario(scenarioData, 0, tolerance))
			continue
		}
		for _, vari := range scenarioData.Runs[0] {
			if len(vari) < 3 || vari[0] != '<' || vari[len(vari)-1] != '>' {
				panic(fmt.Sprintf("variable '%s' not of the form <var>", vari))
			}
		}
		// We start at i=1 because the first entry of the runs declares the
		// variables names. e.g. [<N>, <A>, <B>].
		for i := 1; i < len(scenarioData.Runs); i++ {
			s := extractScenario(scenarioData, i, tolerance)
			result = append(result, s)
		}
	}

	return result
}

// extractScenario returns a scenario given the index of a specific run.
func extractScenario(data *scenarioYaml, runIx int, tolerance float64) *Scenario {
	varsData := []string(nil)
	runData := []string(nil)
	if runIx != 0 {
		varsData = data.Runs[0]
		runData = data.Runs[runIx]
	}
	defer wrapPanicf("failed to parse scenario '%s'", data.Name)
	defer wrapPanicf("in run %d, [%v] = [%v]", runIx, strings.Join(varsData, ", "), strings.Join(runData, ", "))

	if len(varsData) != len(runData) {
		msg := fmt.Sprintf("var count of run %v should match var count of %v", runData, varsData)
		panic(msg)
	}

	// don't find and replace on name
	name := data.Name
	desc := replace(data.Desc, varsData, runData)

	checks := make([]*Check, 0, len(data.Checks))
	for _, c := range data.Checks {
		checks = append(checks, parseCheck(replace(c, varsData, runData)))
	}

	var run []string
	for i := range varsData {
		run = append(run, varsData[i]+"="+runData[i])
	}

	return &Scenario{
		Name:      name,
		Desc:      desc,
		Run:       strings.Join(run, " "),
		Tolerance: tolerance,
		Checks:    checks,
	}
}

// parseCheck splits "<expression> <assertion>" at the assertion keyword.
// Whitespace inside the expression is dropped.
func parseCheck(str string) *Check {
	defer wrapPanicf("in check '%s'", str)

	fields := strings.Fields(str)
	for i := 1; i < len(fields); i++ {
		switch AssertionType(fields[i]) {
		case AssertionTypeIs, AssertionTypeIn, AssertionTypeFails:
			return &Check{
				Expression: strings.Join(fields[:i], ""),
				Assertion:  parseAssertion(fields[i], fields[i+1:]),
			}
		}
	}

	panic("missing assertion, expected 'is', 'in' or 'fails'")
}

func parseAssertion(typeStr string, args []string) *Assertion {
	arg := strings.Join(args, "")
	defer wrapPanicf("in parse assertion '%s %s'", typeStr, arg)

	switch AssertionType(typeStr) {
	case AssertionTypeIs:
		return &Assertion{
			Type: AssertionTypeIs,
			V1:   parseValue(arg),
		}

	case AssertionTypeIn:
		v1, v2 := parseRange(arg)
		return &Assertion{
			Type: AssertionTypeIn,
			V1:   v1,
			V2:   v2,
		}

	case AssertionTypeFails:
		return &Assertion{
			Type: AssertionTypeFails,
			Kind: parseKind(args),
		}
	}

	panic("not valid assertion type")
}

func parseKind(args []string) evaluator.Kind {
	switch len(args) {
	case 0:
		return 0
	case 1:
		for kind, name := range kindNames {
			if name == args[0] {
				return kind
			}
		}
	}

	panic(fmt.Sprintf("unknown failure kind '%s', expected invalid-number or malformed", strings.Join(args, " ")))
}

func parseRange(rng string) (v1, v2 float64) {
	defer wrapPanicf("in parse range '%s'", rng)

	if len(rng) < 2 || rng[0] != '(' || rng[len(rng)-1] != ')' {
		panic("should be enclosed by parenthesis")
	}
	split := strings.Split(rng[1:len(rng)-1], ",")
	if len(split) != 2 {
		panic("should be split by a comma")
	}

	v1 = parseValue(split[0])
	v2 = parseValue(split[1])

	if v1 > v2 {
		panic(fmt.Sprintf("lower bound %v is above upper bound %v", v1, v2))
	}

	return v1, v2
}

// parseValue evaluates str as an expression. A leading '-' is read as a
// subtraction from zero, and the keywords inf, -inf and nan name the values
// no plain expression spells.
func parseValue(str string) float64 {
	defer wrapPanicf("in parse value '%s'", str)

	switch strings.ToLower(str) {
	case "inf", "+inf":
		return math.Inf(1)
	case "-inf":
		return math.Inf(-1)
	case "nan":
		return math.NaN()
	}

	expr := str
	if strings.HasPrefix(expr, "-") {
		expr = "0" + expr
	}
	v, err := evaluator.Evaluate(expr)
	if err == nil {
		return v
	}

	panic("value is not a number or expression: " + err.Error())
}

// replace finds occurrences of varsData and replaces them by the respective
// element in the runsData.
func replace(str string, varsData []string, runData []string) string {
	for i := range varsData {
		str = strings.Replace(str, varsData[i], runData[i], -1)
	}
	return str
}

// wrapPanicf recovers from a panic and then starts to panic with a message
// that adds to the message of the previous panic. This function should always
// be defered because of the recover and is commonly at the start of a
// function.
func wrapPanicf(format string, args ...interface{}) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf(format, args...)
		panic(fmt.Sprintf("%s:\n- %v", msg, r))
	}
}
