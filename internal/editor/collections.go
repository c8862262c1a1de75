package editor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// Collection names a repeated collection of the Document by its JSON key.
type Collection string

const (
	Skills         Collection = "skills"
	Experience     Collection = "experience"
	Education      Collection = "education"
	Projects       Collection = "projects"
	Certifications Collection = "certifications"
	Languages      Collection = "languages"
	Achievements   Collection = "achievements"
	Volunteering   Collection = "volunteering"
	Publications   Collection = "publications"
	References     Collection = "references"
	CustomSections Collection = "customSections"
)

// Collections lists every repeated collection in Document field order.
var Collections = []Collection{
	Skills, Experience, Education, Projects, Certifications, Languages,
	Achievements, Volunteering, Publications, References, CustomSections,
}

// BulletOp is one of the position-addressed bullet edits.
type BulletOp string

const (
	BulletAdd    BulletOp = "add"
	BulletSet    BulletOp = "set"
	BulletRemove BulletOp = "remove"
)

// BulletEdit describes a single edit of an entity's bullet list.
type BulletEdit struct {
	Op    BulletOp
	Index int
	Text  string
}

// entityOps are the collection edits that do not depend on the entity type.
type entityOps interface {
	add(data []byte) (store.Action, string, error)
	remove(id string) (store.Action, error)
	move(id string, delta int) (store.Action, error)
	ids() []string
}

type collection[T types.Entity] struct {
	name  Collection
	items []T
	blank func() T
	wrap  func([]T) store.Action
}

func (c collection[T]) add(data []byte) (store.Action, string, error) {
	item := c.blank()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, "", &Error{Message: fmt.Sprintf("invalid %s entry", c.name), Cause: err}
		}
	}

	id := item.EntityID()
	if id == "" {
		return nil, "", &Error{Message: fmt.Sprintf("%s entry has an empty id", c.name)}
	}
	if _, exists := Find(c.items, id); exists {
		return nil, "", &Error{Message: fmt.Sprintf("%s already contains id %q", c.name, id), Cause: ErrDuplicateID}
	}
	return c.wrap(Append(c.items, item)), id, nil
}

func (c collection[T]) remove(id string) (store.Action, error) {
	if _, ok := Find(c.items, id); !ok {
		return nil, c.notFound(id)
	}
	return c.wrap(Remove(c.items, id)), nil
}

func (c collection[T]) move(id string, delta int) (store.Action, error) {
	if _, ok := Find(c.items, id); !ok {
		return nil, c.notFound(id)
	}
	return c.wrap(Move(c.items, id, delta)), nil
}

func (c collection[T]) ids() []string {
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.EntityID()
	}
	return out
}

func (c collection[T]) notFound(id string) error {
	return &Error{Message: fmt.Sprintf("%s has no entry %q", c.name, id), Cause: ErrEntityNotFound}
}

func lookup(doc types.Document, name Collection) (entityOps, error) {
	switch name {
	case Skills:
		return collection[types.Skill]{name: name, items: doc.Skills,
			blank: func() types.Skill { return NewSkill("") },
			wrap:  func(v []types.Skill) store.Action { return store.UpdateSkills{Skills: v} }}, nil
	case Experience:
		return collection[types.Experience]{name: name, items: doc.Experience,
			blank: NewExperience,
			wrap:  func(v []types.Experience) store.Action { return store.UpdateExperience{Experience: v} }}, nil
	case Education:
		return collection[types.Education]{name: name, items: doc.Education,
			blank: NewEducation,
			wrap:  func(v []types.Education) store.Action { return store.UpdateEducation{Education: v} }}, nil
	case Projects:
		return collection[types.Project]{name: name, items: doc.Projects,
			blank: NewProject,
			wrap:  func(v []types.Project) store.Action { return store.UpdateProjects{Projects: v} }}, nil
	case Certifications:
		return collection[types.Certification]{name: name, items: doc.Certifications,
			blank: NewCertification,
			wrap:  func(v []types.Certification) store.Action { return store.UpdateCertifications{Certifications: v} }}, nil
	case Languages:
		return collection[types.Language]{name: name, items: doc.Languages,
			blank: NewLanguage,
			wrap:  func(v []types.Language) store.Action { return store.UpdateLanguages{Languages: v} }}, nil
	case Achievements:
		return collection[types.Achievement]{name: name, items: doc.Achievements,
			blank: NewAchievement,
			wrap:  func(v []types.Achievement) store.Action { return store.UpdateAchievements{Achievements: v} }}, nil
	case Volunteering:
		return collection[types.Volunteering]{name: name, items: doc.Volunteering,
			blank: NewVolunteering,
			wrap:  func(v []types.Volunteering) store.Action { return store.UpdateVolunteering{Volunteering: v} }}, nil
	case Publications:
		return collection[types.Publication]{name: name, items: doc.Publications,
			blank: NewPublication,
			wrap:  func(v []types.Publication) store.Action { return store.UpdatePublications{Publications: v} }}, nil
	case References:
		return collection[types.Reference]{name: name, items: doc.References,
			blank: NewReference,
			wrap:  func(v []types.Reference) store.Action { return store.UpdateReferences{References: v} }}, nil
	case CustomSections:
		return collection[types.CustomSection]{name: name, items: doc.CustomSections,
			blank: func() types.CustomSection { return NewCustomSection("") },
			wrap:  func(v []types.CustomSection) store.Action { return store.UpdateCustomSections{CustomSections: v} }}, nil
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown collection %q", name), Cause: ErrUnknownCollection}
	}
}

// AddFromJSON builds the action that appends a new entity to the named collection. data
// is a JSON object merged over a blank entity, so it may be empty or partial; a fresh id
// is assigned unless data carries one. The id of the new entity is returned.
func AddFromJSON(doc types.Document, name Collection, data []byte) (store.Action, string, error) {
	ops, err := lookup(doc, name)
	if err != nil {
		return nil, "", err
	}
	return ops.add(data)
}

// RemoveFrom builds the action that removes the entity with the given id.
func RemoveFrom(doc types.Document, name Collection, id string) (store.Action, error) {
	ops, err := lookup(doc, name)
	if err != nil {
		return nil, err
	}
	return ops.remove(id)
}

// MoveWithin builds the action that shifts an entity by delta positions.
func MoveWithin(doc types.Document, name Collection, id string, delta int) (store.Action, error) {
	ops, err := lookup(doc, name)
	if err != nil {
		return nil, err
	}
	return ops.move(id, delta)
}

// IDs lists the entity ids of the named collection in document order.
func IDs(doc types.Document, name Collection) ([]string, error) {
	ops, err := lookup(doc, name)
	if err != nil {
		return nil, err
	}
	return ops.ids(), nil
}

// EditBullets builds the action that applies edit to the bullets of one entity. Only
// experience, education, projects and volunteering carry bullets.
func EditBullets(doc types.Document, name Collection, id string, edit BulletEdit) (store.Action, error) {
	switch name {
	case Experience:
		return editBullets(name, doc.Experience, id, edit, func(v []types.Experience) store.Action {
			return store.UpdateExperience{Experience: v}
		})
	case Education:
		return editBullets(name, doc.Education, id, edit, func(v []types.Education) store.Action {
			return store.UpdateEducation{Education: v}
		})
	case Projects:
		return editBullets(name, doc.Projects, id, edit, func(v []types.Project) store.Action {
			return store.UpdateProjects{Projects: v}
		})
	case Volunteering:
		return editBullets(name, doc.Volunteering, id, edit, func(v []types.Volunteering) store.Action {
			return store.UpdateVolunteering{Volunteering: v}
		})
	default:
		return nil, &Error{Message: fmt.Sprintf("collection %q has no bullets", name), Cause: ErrUnknownCollection}
	}
}

func editBullets[T types.Bulleted[T]](name Collection, items []T, id string, edit BulletEdit, wrap func([]T) store.Action) (store.Action, error) {
	if _, ok := Find(items, id); !ok {
		return nil, &Error{Message: fmt.Sprintf("%s has no entry %q", name, id), Cause: ErrEntityNotFound}
	}

	var fn func(T) T
	switch edit.Op {
	case BulletAdd:
		fn = AddBullet[T]
	case BulletSet:
		fn = func(item T) T { return SetBullet(item, edit.Index, edit.Text) }
	case BulletRemove:
		fn = func(item T) T { return RemoveBullet(item, edit.Index) }
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown bullet operation %q", edit.Op)}
	}
	return wrap(Update(items, id, fn)), nil
}
