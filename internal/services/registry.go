package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService AuthService
	HomeService HomeService
}
