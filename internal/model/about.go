package model

// Maintainer describes a member of the team behind the service.
type Maintainer struct {
	FirstName string
	LastName  string
	ID        string
	Email     string
}

// Maintainers is the fixed list served by the about endpoint.
var Maintainers = []Maintainer{
	{FirstName: "Avery", LastName: "Cohen", ID: "100000001", Email: "avery.cohen@example.com"},
	{FirstName: "Noa", LastName: "Peretz", ID: "100000002", Email: "noa.peretz@example.com"},
}
