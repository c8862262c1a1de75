package store

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

// envelope is the JSON form of an action: {"type": "...", "payload": ...}.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeAction parses a JSON action envelope. Unknown tags decode to Unknown rather than
// failing; a recognized tag with a payload of the wrong shape is a DecodeError.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Message: "failed to parse action envelope", Cause: err}
	}
	if env.Type == "" {
		return nil, &DecodeError{Message: "action type is empty"}
	}

	tag := ActionType(env.Type)
	switch tag {
	case ActionSetDocument:
		if err := schemas.ValidateDocument(env.Payload); err != nil {
			return nil, &DecodeError{Tag: env.Type, Message: "payload is not a CV document", Cause: err}
		}
		var doc types.Document
		if err := decodePayload(env, &doc); err != nil {
			return nil, err
		}
		return SetDocument{Document: doc}, nil
	case ActionResetDocument:
		return SetDocument{Document: types.DefaultDocument()}, nil
	case ActionUpdatePersonalInfo:
		return decode(env, func(p types.PersonalInfoPatch) Action { return UpdatePersonalInfo{Patch: p} })
	case ActionUpdateSummary:
		return decode(env, func(s string) Action { return UpdateSummary{Content: s} })
	case ActionUpdateSkills:
		return decode(env, func(v []types.Skill) Action { return UpdateSkills{Skills: v} })
	case ActionUpdateExperience:
		return decode(env, func(v []types.Experience) Action { return UpdateExperience{Experience: v} })
	case ActionUpdateEducation:
		return decode(env, func(v []types.Education) Action { return UpdateEducation{Education: v} })
	case ActionUpdateProjects:
		return decode(env, func(v []types.Project) Action { return UpdateProjects{Projects: v} })
	case ActionUpdateCertifications:
		return decode(env, func(v []types.Certification) Action { return UpdateCertifications{Certifications: v} })
	case ActionUpdateLanguages:
		return decode(env, func(v []types.Language) Action { return UpdateLanguages{Languages: v} })
	case ActionUpdateAchievements:
		return decode(env, func(v []types.Achievement) Action { return UpdateAchievements{Achievements: v} })
	case ActionUpdateVolunteering:
		return decode(env, func(v []types.Volunteering) Action { return UpdateVolunteering{Volunteering: v} })
	case ActionUpdatePublications:
		return decode(env, func(v []types.Publication) Action { return UpdatePublications{Publications: v} })
	case ActionUpdateReferences:
		return decode(env, func(v []types.Reference) Action { return UpdateReferences{References: v} })
	case ActionUpdateCustomSections:
		return decode(env, func(v []types.CustomSection) Action { return UpdateCustomSections{CustomSections: v} })
	case ActionUpdateStyles:
		var patch types.StylePatch
		if err := decodePayload(env, &patch); err != nil {
			return nil, err
		}
		if err := patch.Validate(); err != nil {
			return nil, &DecodeError{Tag: env.Type, Message: "invalid style patch", Cause: err}
		}
		return UpdateStyles{Patch: patch}, nil
	case ActionToggleSection:
		return decode(env, func(id string) Action { return ToggleSection{ID: id} })
	case ActionReplaceSections, ActionUpdateSections, ActionReorderSections:
		var registry []types.Section
		if err := decodePayload(env, &registry); err != nil {
			return nil, err
		}
		for _, s := range registry {
			if !s.Type.Valid() {
				return nil, &DecodeError{Tag: env.Type, Message: fmt.Sprintf("section %q has unknown type %q", s.ID, s.Type)}
			}
		}
		return ReplaceSections{Sections: registry}, nil
	default:
		return Unknown{Tag: env.Type, Payload: []byte(env.Payload)}, nil
	}
}

// decode unmarshals the payload as T and wraps it into its action.
func decode[T any](env envelope, wrap func(T) Action) (Action, error) {
	var v T
	if err := decodePayload(env, &v); err != nil {
		return nil, err
	}
	return wrap(v), nil
}

func decodePayload(env envelope, target any) error {
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return &DecodeError{Tag: env.Type, Message: "payload is missing"}
	}
	if err := json.Unmarshal(env.Payload, target); err != nil {
		return &DecodeError{Tag: env.Type, Message: fmt.Sprintf("failed to decode %T payload", target), Cause: err}
	}
	return nil
}
