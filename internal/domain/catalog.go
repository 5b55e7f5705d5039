package domain

// DefaultCatalog returns the fixed equipment catalog the facility is
// seeded with at startup. Seed statuses are a starting point only:
// everything except MAINTENANCE is recomputed from the booking set on
// the first engine tick.
func DefaultCatalog() []*Equipment {
	return []*Equipment{
		{
			ID:       "eq-001",
			Name:     "Scanning Electron Microscope (SEM)",
			Category: "Microscopy",
			LabName:  "Nanotechnology Research Center",
			Status:   EquipmentAvailable,
			Description: "High-resolution imaging of surfaces using a focused beam of electrons.",
			Specifications: []string{
				"Resolution: 1.2nm @ 30kV",
				"Magnification: 10x to 1,000,000x",
				"Emitter: Schottky Field Emission",
				"Detectors: SE, BSE, EDS",
			},
			HourlyRate:      150,
			Image:           "https://images.unsplash.com/photo-1581093588401-fbb62a02f120?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 1240,
		},
		{
			ID:       "eq-002",
			Name:     "NMR Spectrometer 400MHz",
			Category: "Spectroscopy",
			LabName:  "Organic Chemistry Lab",
			Status:   EquipmentInUse,
			Description: "Analysis of molecular structure and dynamics of organic compounds.",
			Specifications: []string{
				"Field strength: 9.4 Tesla",
				"Probe: 5mm BBO CryoProbe",
				"Autosampler: 24 positions",
				"Solvent suppression enabled",
			},
			HourlyRate:      85,
			Image:           "https://images.unsplash.com/photo-1579154235828-ac01e5548046?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 3500,
		},
		{
			ID:       "eq-003",
			Name:     "Thermal Cycler (PCR)",
			Category: "Molecular Biology",
			LabName:  "Genetics & Biotech Lab",
			Status:   EquipmentAvailable,
			Description: "Rapid heating and cooling for DNA amplification via PCR.",
			Specifications: []string{
				"Block format: 96-well 0.2ml",
				"Max ramp rate: 6.0 °C/sec",
				"Temperature range: 4°C - 99°C",
				"Touchscreen interface",
			},
			HourlyRate:      20,
			Image:           "https://images.unsplash.com/photo-1581093196277-9f608ed386ea?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 890,
		},
		{
			ID:       "eq-004",
			Name:     "X-Ray Diffractometer (XRD)",
			Category: "Material Science",
			LabName:  "Advanced Materials Lab",
			Status:   EquipmentMaintenance,
			Description: "Used for phase identification of crystalline materials.",
			Specifications: []string{
				"Anode: Copper (Cu-Kα)",
				"Goniometer: Theta-Theta vertical",
				"Detector: LynxEye XE-T",
				"Spinning stage available",
			},
			HourlyRate:      120,
			Image:           "https://images.unsplash.com/photo-1518152006812-edab29b069ac?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 1100,
		},
		{
			ID:       "eq-005",
			Name:     "High Performance Liquid Chromatograph (HPLC)",
			Category: "Chromatography",
			LabName:  "Analytical Chemistry Wing",
			Status:   EquipmentAvailable,
			Description: "Separation, identification, and quantification of components in a mixture.",
			Specifications: []string{
				"Pump: Quaternary Gradient",
				"Detector: Diode Array (PDA)",
				"Column Oven: Up to 80°C",
				"Injection vol: 0.1 to 100uL",
			},
			HourlyRate:      45,
			Image:           "https://images.unsplash.com/photo-1532187863486-abf9b3c3b0fb?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 2100,
		},
		{
			ID:       "eq-006",
			Name:     "Confocal Laser Scanning Microscope",
			Category: "Microscopy",
			LabName:  "Cell Biology Institute",
			Status:   EquipmentAvailable,
			Description: "Advanced 3D imaging of fluorescently labeled biological samples.",
			Specifications: []string{
				"Lasers: 405, 488, 561, 640nm",
				"Objectives: 10x, 20x, 40x, 63x Oil",
				"Z-stacking resolution: 50nm",
				"Incubation chamber for live cells",
			},
			HourlyRate:      180,
			Image:           "https://images.unsplash.com/photo-1582719471384-894fbb16e074?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 420,
		},
		{
			ID:       "eq-007",
			Name:     "Atomic Force Microscope (AFM)",
			Category: "Microscopy",
			LabName:  "Nanofabrication Facility",
			Status:   EquipmentAvailable,
			Description: "Nanoscale surface topography and mechanical property mapping.",
			Specifications: []string{
				"Modes: Tapping, Contact, PeakForce",
				"Scan range: 90um x 90um",
				"Vertical noise floor: < 0.03nm",
				"Fluid cell compatible",
			},
			HourlyRate:      200,
			Image:           "https://images.unsplash.com/photo-1581093458791-9f3c3900df4b?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 650,
		},
		{
			ID:       "eq-008",
			Name:     "Mass Spectrometer (LC-MS/MS)",
			Category: "Spectroscopy",
			LabName:  "Proteomics Research Lab",
			Status:   EquipmentInUse,
			Description: "High-sensitivity identification of proteins and small molecules.",
			Specifications: []string{
				"Mass range: 50 - 6,000 m/z",
				"Resolution: 140,000 @ m/z 200",
				"Ion Source: Electrospray (ESI)",
				"Coupled with Nano-LC",
			},
			HourlyRate:      250,
			Image:           "https://images.unsplash.com/photo-1576086213369-97a306d36557?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 5200,
		},
		{
			ID:       "eq-009",
			Name:     "Inductively Coupled Plasma (ICP-OES)",
			Category: "Spectroscopy",
			LabName:  "Environmental Science Lab",
			Status:   EquipmentAvailable,
			Description: "Detection of trace metals in environmental and geological samples.",
			Specifications: []string{
				"RF Power: 750 - 1500 Watts",
				"Plasma viewing: Dual (Axial/Radial)",
				"Wavelength: 165 - 900nm",
				"Detection limit: ppb range",
			},
			HourlyRate:      75,
			Image:           "https://images.unsplash.com/photo-1579684385127-1ef15d508118?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 1800,
		},
		{
			ID:       "eq-010",
			Name:     "Cryogenic Probe Station",
			Category: "Material Science",
			LabName:  "Quantum Electronics Lab",
			Status:   EquipmentAvailable,
			Description: "Electrical characterization of materials at cryogenic temperatures.",
			Specifications: []string{
				"Temp Range: 4.2K to 400K",
				"Vacuum: 10^-6 mbar",
				"Probes: 6 micromanipulators",
				"Shielding: Radiation & EMI",
			},
			HourlyRate:      110,
			Image:           "https://images.unsplash.com/photo-1562408590-e32931084e23?auto=format&fit=crop&q=80&w=800",
			TotalUsageHours: 320,
		},
	}
}
