// Package entity contains the core business objects of the project.
package entity

import "strings"

// NavEntry is one navigation item in a role-scoped back-office menu.
// Each entry declares the set of roles allowed to see it.
type NavEntry struct {
	Name  string `json:"name"` // Display label, e.g. "Dashboard".
	Path  string `json:"path"` // Route prefix, e.g. "/admin/dashboard".
	Roles Roles  `json:"-"`    // Roles allowed to see this entry.
}

// navRegistry is the full ordered navigation registry. Order here is the
// order entries render in.
var navRegistry = []NavEntry{
	{Name: "Dashboard", Path: "/admin/dashboard", Roles: Roles{RoleAdmin}},
	{Name: "Shops", Path: "/admin/shops", Roles: Roles{RoleAdmin}},
	{Name: "Payments", Path: "/admin/payments", Roles: Roles{RoleAdmin}},
	{Name: "Users", Path: "/admin/users", Roles: Roles{RoleAdmin}},
	{Name: "Analytics", Path: "/admin/analytics", Roles: Roles{RoleAdmin}},
	{Name: "Settings", Path: "/admin/settings", Roles: Roles{RoleAdmin}},
	{Name: "Dashboard", Path: "/shop-owner/dashboard", Roles: Roles{RoleShopOwner}},
	{Name: "Payments", Path: "/shop-owner/payments", Roles: Roles{RoleShopOwner}},
	{Name: "Settings", Path: "/shop-owner/settings", Roles: Roles{RoleShopOwner}},
}

// defaultRoutes maps each role's root path to its landing route.
var defaultRoutes = map[Role]string{
	RoleAdmin:     "/admin/dashboard",
	RoleShopOwner: "/shop-owner/dashboard",
	RoleCustomer:  "/",
}

// NavEntriesFor returns the ordered navigation entries visible to a role.
func NavEntriesFor(role Role) []NavEntry {
	entries := make([]NavEntry, 0, len(navRegistry))
	for _, entry := range navRegistry {
		if entry.Roles.Contains(role) {
			entries = append(entries, entry)
		}
	}

	return entries
}

// DefaultRoute returns the landing route for a role's root path, e.g.
// visiting /admin redirects to /admin/dashboard.
func DefaultRoute(role Role) string {
	if route, ok := defaultRoutes[role]; ok {
		return route
	}

	return "/"
}

// IsActive reports whether a nav entry should be highlighted for the current
// route. Prefix matching keeps the parent entry highlighted on sub-routes.
func (e NavEntry) IsActive(currentRoute string) bool {
	return strings.HasPrefix(currentRoute, e.Path)
}
