package patient

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	conditions := in.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	p := &Patient{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Age:        in.Age,
		Conditions: conditions,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges only the supplied fields into the stored record and returns
// the merged result.
func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Age != nil {
		p.Age = in.Age
	}
	if in.Conditions != nil {
		p.Conditions = *in.Conditions
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
