package usecase

import (
	"context"

	"pawpal-planner/internal/model"
	"pawpal-planner/internal/planner"
)

// SetPet stores the pet profile. An owner already on file picks up the new
// pet reference; the pet holds no back-reference to the owner.
func (uc *implUseCase) SetPet(ctx context.Context, input planner.SetPetInput) (planner.SetPetOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	pet := model.Pet{
		Name:        input.Name,
		Species:     input.Species,
		Needs:       append([]string(nil), input.Needs...),
		Preferences: clonePreferences(input.Preferences),
	}

	uc.pet = &pet
	if uc.owner != nil {
		uc.owner.Pet = uc.pet
	}

	uc.l.Infof(ctx, "SetPet: %q species=%s needs=%d", pet.Name, pet.Species, len(pet.Needs))
	return planner.SetPetOutput{Pet: pet}, nil
}

// SetOwner stores the owner profile. A zero availability window falls back
// to the default day (08:00 to 22:00).
func (uc *implUseCase) SetOwner(ctx context.Context, input planner.SetOwnerInput) (planner.SetOwnerOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	availability := input.Availability
	if availability == (model.TimeWindow{}) {
		availability = model.DefaultAvailability
	}

	owner := model.PetOwner{
		Name:         input.Name,
		Availability: availability,
		Preferences:  clonePreferences(input.Preferences),
		Pet:          uc.pet,
	}

	uc.owner = &owner

	uc.l.Infof(ctx, "SetOwner: %q available=[%d, %d)", owner.Name, availability.Start, availability.End)
	return planner.SetOwnerOutput{Owner: owner}, nil
}

func clonePreferences(prefs map[string]string) map[string]string {
	out := make(map[string]string, len(prefs))
	for k, v := range prefs {
		out[k] = v
	}
	return out
}
