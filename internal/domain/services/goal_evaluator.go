// Package services contains stateless domain services over recipes.
package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/values"
)

const (
	maxExpressionLength = 1000
	maxASTNodes         = 100
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Goal is a named boolean expression over recipe totals,
// e.g. "calories < 500 && protein >= 20".
type Goal struct {
	Name       string `json:"name" yaml:"name"`
	Expression string `json:"expression" yaml:"expression"`
}

// GoalResult is the outcome of evaluating a single goal.
type GoalResult struct {
	Goal    Goal              `json:"goal" yaml:"goal"`
	Status  values.GoalStatus `json:"status" yaml:"status"`
	Message string            `json:"message,omitempty" yaml:"message,omitempty"`
}

// GoalEvaluator evaluates goals against a recipe.
// Compiled programs are cached per expression.
type GoalEvaluator struct {
	programCache map[string]*vm.Program
	cacheMu      sync.RWMutex
}

// NewGoalEvaluator creates a goal evaluator with an empty program cache.
func NewGoalEvaluator() *GoalEvaluator {
	return &GoalEvaluator{
		programCache: make(map[string]*vm.Program),
	}
}

// GoalEnv builds the evaluation environment for a recipe.
// The variables are calories, protein, fats, carbs, quantity (total grams)
// and ingredients (count).
func GoalEnv(recipe *entities.Recipe) map[string]interface{} {
	env := map[string]interface{}{
		"quantity":    recipe.TotalQuantity(),
		"ingredients": recipe.Len(),
	}
	for name, value := range recipe.CalculateNutrition().AsMap() {
		env[name] = value
	}
	return env
}

// Evaluate runs every goal against the recipe.
//
// The overall status is GoalError if any goal errored, otherwise GoalMissed
// if any goal evaluated to false, otherwise GoalMet. With no goals the
// recipe trivially meets them.
func (e *GoalEvaluator) Evaluate(recipe *entities.Recipe, goals []Goal) (values.GoalStatus, []GoalResult) {
	env := GoalEnv(recipe)
	results := make([]GoalResult, 0, len(goals))
	overall := values.GoalMet

	for _, goal := range goals {
		res := e.evaluateOne(goal, env)
		results = append(results, res)

		switch res.Status {
		case values.GoalError:
			overall = values.GoalError
		case values.GoalMissed:
			if overall != values.GoalError {
				overall = values.GoalMissed
			}
		}
	}

	return overall, results
}

func (e *GoalEvaluator) evaluateOne(goal Goal, env map[string]interface{}) GoalResult {
	if len(goal.Expression) > maxExpressionLength {
		return GoalResult{
			Goal:    goal,
			Status:  values.GoalError,
			Message: fmt.Sprintf("expression too long (max %d chars): %d chars", maxExpressionLength, len(goal.Expression)),
		}
	}

	program, err := e.getOrCompile(goal.Expression, env)
	if err != nil {
		return GoalResult{Goal: goal, Status: values.GoalError, Message: fmt.Sprintf("compilation failed: %v", err)}
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return GoalResult{Goal: goal, Status: values.GoalError, Message: fmt.Sprintf("evaluation failed: %v", err)}
	}

	passed, ok := output.(bool)
	if !ok {
		return GoalResult{Goal: goal, Status: values.GoalError, Message: fmt.Sprintf("expression did not return boolean: %v", output)}
	}

	if passed {
		return GoalResult{Goal: goal, Status: values.GoalMet}
	}
	return GoalResult{Goal: goal, Status: values.GoalMissed, Message: describeValues(goal.Expression, env)}
}

func (e *GoalEvaluator) getOrCompile(expression string, env map[string]interface{}) (*vm.Program, error) {
	e.cacheMu.RLock()
	program, found := e.programCache[expression]
	e.cacheMu.RUnlock()
	if found {
		return program, nil
	}

	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if program, found := e.programCache[expression]; found {
		return program, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
		expr.MaxNodes(maxASTNodes),
	)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}

// describeValues lists the actual values of the variables referenced by a
// missed goal, e.g. "calories = 620, protein = 12".
func describeValues(expression string, env map[string]interface{}) string {
	seen := make(map[string]bool)
	var names []string
	for _, ident := range identifierPattern.FindAllString(expression, -1) {
		if _, ok := env[ident]; ok && !seen[ident] {
			seen[ident] = true
			names = append(names, ident)
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %v", name, env[name]))
	}
	return strings.Join(parts, ", ")
}
