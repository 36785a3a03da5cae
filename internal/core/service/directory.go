package service

import "github.com/legalconnect/platform-api/internal/core/ports"

// DirectoryService serves the public marketing catalog. The content is static
// fixture data, so every accessor returns a fresh copy of the compiled-in
// slice to keep callers from mutating shared state.
type DirectoryService struct{}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

func (d *DirectoryService) Lawyers() []ports.LawyerProfile {
	return clone(directoryLawyers)
}

func (d *DirectoryService) Testimonials() []ports.Testimonial {
	return clone(directoryTestimonials)
}

func (d *DirectoryService) FAQs() []ports.FAQ {
	return clone(directoryFAQs)
}

func (d *DirectoryService) Services() []ports.ServiceOffering {
	return clone(directoryServices)
}

func (d *DirectoryService) Specialties() []string {
	return clone(directorySpecialties)
}

func (d *DirectoryService) Cities() []string {
	return clone(directoryCities)
}

func clone[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
