package session

import (
	"log/slog"

	"revolver/internal/logging"
	"revolver/internal/naming"
)

// Outcome is what happened to one strip during a retarget.
type Outcome int

const (
	OutcomeRetargeted Outcome = iota
	OutcomeAlreadyTarget
	OutcomeMissing
	OutcomeNoMedia
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRetargeted:
		return "retargeted"
	case OutcomeAlreadyTarget:
		return "unchanged"
	case OutcomeMissing:
		return "missing"
	default:
		return "no media"
	}
}

// Change records one strip's outcome.
type Change struct {
	Strip   string
	Type    StripType
	From    string
	To      string
	Outcome Outcome
}

// Report lists the outcome of every strip in timeline order.
type Report struct {
	Mode    Mode
	Changes []Change
}

// Count returns how many strips ended with outcome.
func (r Report) Count(outcome Outcome) int {
	n := 0
	for _, c := range r.Changes {
		if c.Outcome == outcome {
			n++
		}
	}
	return n
}

// Retarget points every movie and sound strip at its counterpart for mode.
// Strips already on the target side, and strips whose counterpart is not on
// disk, keep their reference. Paths are resolved against s.Root and stored
// relative to it again afterwards.
func Retarget(s *Session, mode Mode, resolver naming.Resolver, logger *slog.Logger) Report {
	logger = logging.NewComponentLogger(logger, "session")
	rule := modeRules[mode]
	report := Report{Mode: mode}

	s.MakeAbsolute(s.Root)
	defer s.MakeRelative(s.Root)

	for i := range s.Strips {
		strip := &s.Strips[i]
		change := Change{Strip: strip.Name, Type: strip.Type}
		path, ok := strip.Reference()
		if !ok {
			change.Outcome = OutcomeNoMedia
			report.Changes = append(report.Changes, change)
			continue
		}
		change.From, change.To = path, path

		ref := naming.Classify(path)
		switch {
		case rule.inTarget(ref.Role):
			change.Outcome = OutcomeAlreadyTarget
			logger.Debug("strip already on target", logging.String("strip", strip.Name), logging.String("path", path))
		default:
			target, found := rule.resolve(resolver, path)
			if !found {
				change.Outcome = OutcomeMissing
				logging.WarnWithContext(logger, "no counterpart found", "resolution_miss",
					logging.String("strip", strip.Name),
					logging.String("path", path),
					logging.String("mode", mode.String()),
					logging.String(logging.FieldErrorHint, "encode the missing file or check its name"),
					logging.String(logging.FieldImpact, "strip keeps its current media"),
				)
				break
			}
			strip.setReference(target)
			change.To = target
			change.Outcome = OutcomeRetargeted
			logger.Info("strip retargeted", logging.String("strip", strip.Name), logging.String("path", target))
		}
		report.Changes = append(report.Changes, change)
	}
	return report
}
