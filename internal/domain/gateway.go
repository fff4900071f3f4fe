package domain

// Gateway is the single handle through which every page reads and writes the
// hosted store. It is built once at startup and handed to each page controller.
type Gateway struct {
	Jobs         JobRepository
	Applications ApplicationRepository
	Profiles     ProfileRepository
	Identity     IdentityResolver
}
