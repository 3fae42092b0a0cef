package generator

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Targets lists the packages the generator knows how to render.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate reports every problem in the table at once.
func (t Table) Validate() error {
	var result *multierror.Error

	if len(t.Groups) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no groups", ErrTable))
	}

	groups := make(map[string]bool)
	wrappers := make(map[string]map[string]string)

	for i, g := range t.Groups {
		where := fmt.Sprintf("groups[%d]", i)
		if g.Name != "" {
			where = fmt.Sprintf("group %q", g.Name)
		}

		switch {
		case g.Name == "":
			result = multierror.Append(result, fmt.Errorf("%w: %s: missing name", ErrTable, where))
		case !token.IsIdentifier(g.Name):
			result = multierror.Append(result, fmt.Errorf("%w: %s: name is not an identifier", ErrTable, where))
		case groups[g.Name]:
			result = multierror.Append(result, fmt.Errorf("%w: %s: duplicate group", ErrTable, where))
		}
		groups[g.Name] = true

		if g.Import == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %s: missing import", ErrTable, where))
		}
		if g.Prefix != "" && (!token.IsIdentifier(g.Prefix) || !token.IsExported(g.Prefix)) {
			result = multierror.Append(result, fmt.Errorf("%w: %s: prefix %q is not an exported identifier", ErrTable, where, g.Prefix))
		}

		for _, target := range g.Targets {
			if _, ok := targets[target]; !ok {
				result = multierror.Append(result, fmt.Errorf("%w: %s: unknown target %q (known: %s)", ErrTable, where, target, strings.Join(Targets(), ", ")))
			}
		}

		if err := validateParam(g.Subject); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %s: subject: %v", ErrTable, where, err))
		} else if g.Subject.Variadic {
			result = multierror.Append(result, fmt.Errorf("%w: %s: subject cannot be variadic", ErrTable, where))
		}

		if len(g.Methods) == 0 {
			result = multierror.Append(result, fmt.Errorf("%w: %s: no methods", ErrTable, where))
		}

		for j, m := range g.Methods {
			mwhere := fmt.Sprintf("%s methods[%d]", where, j)
			if m.Name != "" {
				mwhere = fmt.Sprintf("%s method %q", where, m.Name)
			}

			if m.Name == "" {
				result = multierror.Append(result, fmt.Errorf("%w: %s: missing name", ErrTable, mwhere))
				continue
			}
			if !token.IsIdentifier(m.Name) || !token.IsExported(m.Name) {
				result = multierror.Append(result, fmt.Errorf("%w: %s: name is not an exported identifier", ErrTable, mwhere))
			}

			seen := map[string]bool{g.Subject.Name: true}
			for k, p := range m.Params {
				if err := validateParam(p); err != nil {
					result = multierror.Append(result, fmt.Errorf("%w: %s: params[%d]: %v", ErrTable, mwhere, k, err))
					continue
				}
				if seen[p.Name] {
					result = multierror.Append(result, fmt.Errorf("%w: %s: duplicate param %q", ErrTable, mwhere, p.Name))
				}
				seen[p.Name] = true
				if p.Variadic && k != len(m.Params)-1 {
					result = multierror.Append(result, fmt.Errorf("%w: %s: variadic param %q must be last", ErrTable, mwhere, p.Name))
				}
			}

			for _, target := range Targets() {
				if !g.Enabled(target) {
					continue
				}
				if wrappers[target] == nil {
					wrappers[target] = make(map[string]string)
				}
				wrapper := g.Wrapper(m)
				if other, ok := wrappers[target][wrapper]; ok {
					result = multierror.Append(result, fmt.Errorf("%w: %s: wrapper %s.%s already generated for %s", ErrTable, mwhere, target, wrapper, other))
					continue
				}
				wrappers[target][wrapper] = g.Name + "." + m.Name
			}
		}
	}

	return result.ErrorOrNil()
}

func validateParam(p Param) error {
	switch {
	case p.Name == "":
		return errors.New("missing name")
	case !token.IsIdentifier(p.Name):
		return fmt.Errorf("name %q is not an identifier", p.Name)
	case p.Name == "t":
		return errors.New(`name "t" is reserved for the test handle`)
	case strings.TrimSpace(p.Type) == "":
		return fmt.Errorf("param %q has no type", p.Name)
	}
	return nil
}
