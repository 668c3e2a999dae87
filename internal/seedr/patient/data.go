package patient

// Built-in candidate list for the initial clinic rollout. The order is
// significant only in that it is fixed: the seeder walks it front to back.

func str(s string) *string { return &s }

// Defaults returns the static candidate list shipped with the tool.
func Defaults() []Candidate {
	return defaultCandidates
}

var defaultCandidates = []Candidate{
	{
		Name:         "Adaeze Okafor",
		Sex:          "female",
		DateOfBirth:  str("1987-03-14"),
		PhoneNumber:  str("08034412907"),
		Email:        str("adaeze.okafor@gmail.com"),
		Address:      "14 Adetokunbo Ademola Crescent, Wuse II, Abuja",
		HMO:          &HMO{Name: "Hygeia HMO", Plan: "Gold", EnrolleeNumber: "HYG-204581"},
		IsFamilyHead: true,
		FamilyID:     str("FAM-0001"),
	},
	{
		Name:        "Chinedu Okafor",
		Sex:         "male",
		DateOfBirth: str("1984-11-02"),
		PhoneNumber: str("08034412911"),
		Address:     "14 Adetokunbo Ademola Crescent, Wuse II, Abuja",
		HMO:         &HMO{Name: "Hygeia HMO", Plan: "Gold", EnrolleeNumber: "HYG-204582"},
		FamilyID:    str("FAM-0001"),
	},
	{
		Name:            "Kamsiyochukwu Okafor",
		Sex:             "male",
		DateOfBirth:     str("2015-06-21"),
		Address:         "14 Adetokunbo Ademola Crescent, Wuse II, Abuja",
		NextAppointment: str("2024-02-10 09:30"),
		FamilyID:        str("FAM-0001"),
	},
	{
		Name:         "Babatunde Adewale",
		Sex:          "male",
		DateOfBirth:  str("1972-09-30"),
		PhoneNumber:  str("08123006754"),
		Email:        str("t.adewale@yahoo.com"),
		Address:      "5 Ogunlana Drive, Surulere, Lagos",
		Outstanding:  str("15500.00"),
		IsFamilyHead: true,
		FamilyID:     str("FAM-0002"),
	},
	{
		Name:        "Folake Adewale",
		Sex:         "female",
		DateOfBirth: str("1976-01-17"),
		Email:       str("folake.adewale@gmail.com"),
		Address:     "5 Ogunlana Drive, Surulere, Lagos",
		HMO:         &HMO{Name: "AXA Mansard Health", Plan: "Silver", EnrolleeNumber: "AXM-77012"},
		FamilyID:    str("FAM-0002"),
	},
	{
		Name:            "Ibrahim Musa",
		Sex:             "male",
		DateOfBirth:     str("1995-05-08"),
		PhoneNumber:     str("07065540032"),
		Address:         "22 Ahmadu Bello Way, Kaduna",
		HMO:             &HMO{Name: "Reliance HMO", Plan: "Red Beryl", EnrolleeNumber: "REL-118290"},
		NextAppointment: str("2024-03-02 11:00"),
		IsFamilyHead:    true,
	},
	{
		Name:        "Ngozi Eze",
		Sex:         "female",
		DateOfBirth: str("1990-12-25"),
		Email:       str("ngozi.eze@outlook.com"),
		Address:     "8 Zik Avenue, Uwani, Enugu",
		Outstanding: str("4200.00"),
		CreatedAt:   str("2023-11-18T08:45:00Z"),
	},
	{
		Name:        "Oluwaseun Bakare",
		Sex:         "male",
		DateOfBirth: str("2001-07-04"),
		PhoneNumber: str("09011238845"),
		Email:       str("seun.bakare@gmail.com"),
		Address:     "3 Allen Avenue, Ikeja, Lagos",
	},
	{
		// Walk-in with no reachable contact on file yet.
		Name:        "Amina Bello",
		Sex:         "female",
		DateOfBirth: str("1968-02-11"),
		Address:     "17 Sultan Road, Ungwan Rimi, Kaduna",
	},
	{
		Name:         "Emeka Nwosu",
		Sex:          "male",
		PhoneNumber:  str("08180076219"),
		Address:      "41 Okigwe Road, Owerri",
		HMO:          &HMO{Name: "Leadway Health", Plan: "Bronze"},
		IsFamilyHead: true,
		FamilyID:     str("FAM-0003"),
	},
}
