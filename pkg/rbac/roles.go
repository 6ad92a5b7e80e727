package rbac

// Stock role names.
const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleAuthor        = "author"
	RoleContributor   = "contributor"
	RoleSubscriber    = "subscriber"
)

// Stock capabilities.
const (
	CapRead             = "read"
	CapEditPosts        = "edit_posts"
	CapPublishPosts     = "publish_posts"
	CapUploadFiles      = "upload_files"
	CapEditOthersPosts  = "edit_others_posts"
	CapManageCategories = "manage_categories"
	CapUnfilteredHTML   = "unfiltered_html"
	CapManageOptions    = "manage_options"
	CapEditThemeOptions = "edit_theme_options"
)

// DefaultRoles returns the stock role hierarchy. Editors and administrators
// may store unfiltered markup; authors and below may not.
func DefaultRoles() map[string]Role {
	return map[string]Role{
		RoleSubscriber: {
			Capabilities: []string{CapRead},
		},
		RoleContributor: {
			Capabilities: []string{CapEditPosts},
			Inherits:     []string{RoleSubscriber},
		},
		RoleAuthor: {
			Capabilities: []string{CapPublishPosts, CapUploadFiles},
			Inherits:     []string{RoleContributor},
		},
		RoleEditor: {
			Capabilities: []string{CapEditOthersPosts, CapManageCategories, CapUnfilteredHTML},
			Inherits:     []string{RoleAuthor},
		},
		RoleAdministrator: {
			Capabilities: []string{CapManageOptions, CapEditThemeOptions},
			Inherits:     []string{RoleEditor},
		},
	}
}
