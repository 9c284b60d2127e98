package hostapp

// DefaultCatalog returns the built-in application descriptors in their fixed
// registration order. Order matters: the probe sweep returns the first
// match, so the list is an explicit, reviewable artifact rather than an
// auto-registration side effect.
//
// Probes check environment markers the host sets for processes it spawns or
// embeds. Executable aliases cover hosts that ship their own interpreter
// binary under a recognizable name.
func DefaultCatalog() []Descriptor {
	return []Descriptor{
		{
			ID:    "ansible",
			Probe: AnyOf(EnvSet("ANSIBLE_CONFIG", "ANSIBLE_HOME"), CommandOnPath("ansible")),
		},
		{
			ID:    "autocad",
			Probe: EnvSet("ACAD", "ACADVER"),
		},
		{
			ID:                "blender",
			Probe:             EnvSet("BLENDER_SYSTEM_SCRIPTS", "BLENDER_USER_SCRIPTS"),
			ExecutableAliases: []string{"blender"},
		},
		{
			ID:    "calibre",
			Probe: AnyOf(EnvSet("CALIBRE_CONFIG_DIRECTORY"), CommandOnPath("calibre-debug")),
		},
		{
			ID:    "cinema4d",
			Name:  "Cinema 4D",
			Probe: EnvSet("C4D_PLUGINS_DIR", "CINEMA4D_LOCATION"),
		},
		{
			ID:    "clarisse",
			Probe: EnvSet("CLARISSE_HOME", "IX_SHELF_CONFIG_FILE"),
		},
		{
			ID:    "cry_engine",
			Probe: EnvSet("CRYENGINE_ROOT"),
		},
		{
			ID:    "flame",
			Probe: EnvSet("FLAME_HOME", "DL_PYTHON_HOOK_PATH"),
		},
		{
			ID:    "freecad",
			Name:  "FreeCAD",
			Probe: EnvSet("FREECAD_USER_HOME", "FREECAD_USER_DATA"),
		},
		{
			ID:    "fusion",
			Probe: EnvSet("ADSK_FUSION_LOCATION"),
		},
		{
			ID:    "gaffer",
			Probe: EnvSet("GAFFER_ROOT", "GAFFER_STARTUP_PATHS"),
		},
		{
			ID:    "gimp",
			Probe: EnvSet("GIMP2_DIRECTORY", "GIMP_PLUGIN_DIR"),
		},
		{
			ID:                "houdini",
			Probe:             EnvSet("HFS", "HOUDINI_PATH"),
			ExecutableAliases: []string{"houdini", "hython"},
		},
		{
			ID:    "inkscape",
			Probe: EnvSet("INKSCAPE_PROFILE_DIR"),
		},
		{
			ID:    "katana",
			Probe: EnvSet("KATANA_ROOT", "KATANA_RESOURCES"),
		},
		{
			ID:    "krita",
			Probe: EnvSet("KRITA_PLUGIN_PATH"),
		},
		{
			ID:    "mari",
			Probe: EnvSet("MARI_SCRIPT_PATH", "MARI_USER_PATH"),
		},
		{
			ID:    "marmoset",
			Probe: EnvSet("MARMOSET_TOOLBAG_PATH"),
		},
		{
			ID:                "maya",
			Probe:             EnvSet("MAYA_LOCATION", "MAYA_APP_DIR"),
			ExecutableAliases: []string{"maya", "mayapy"},
		},
		{
			ID:                "max3ds",
			Name:              "3ds Max",
			Probe:             EnvSet("ADSK_3DSMAX_x64", "3DSMAX_PLUGIN_PATH"),
			ExecutableAliases: []string{"3dsmax"},
		},
		{
			ID:    "motion_builder",
			Probe: EnvSet("MOTIONBUILDER_PLUGIN_PATH"),
		},
		{
			ID:    "nuke",
			Probe: EnvSet("NUKE_PATH"),
		},
		{
			ID:    "revit",
			Probe: EnvSet("REVIT_API_PATH"),
		},
		{
			ID:                "rv",
			Name:              "RV",
			Probe:             EnvSet("RV_HOME", "RV_SUPPORT_PATH"),
			ExecutableAliases: []string{"rv"},
		},
		{
			ID:    "shotgun",
			Probe: EnvSet("SHOTGUN_SITE", "SG_SITE"),
		},
		{
			ID:    "scribus",
			Probe: EnvSet("SCRIBUSDIR"),
		},
		{
			ID:    "softimage",
			Probe: EnvSet("XSI_HOME"),
		},
		{
			ID:    "substance_designer",
			Probe: EnvSet("SUBSTANCE_DESIGNER_PATH"),
		},
		{
			ID:                "substance_painter",
			Probe:             EnvSet("SUBSTANCE_PAINTER_PLUGINS_PATH"),
			ExecutableAliases: []string{"adobe substance 3d painter"},
		},
		{
			ID:                "unreal",
			Probe:             EnvSet("UE_ENGINE_PATH", "UNREAL_ENGINE_ROOT"),
			ExecutableAliases: []string{"ue4editor", "unrealeditor"},
		},
	}
}

// DefaultRegistry builds a registry from the built-in catalog. The catalog
// is validated at construction; an error here is a programming mistake.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultCatalog()...)
}
