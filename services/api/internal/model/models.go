package model

import "gorm.io/gorm"

// All lists every table, in AutoMigrate order.
func All() []interface{} {
	return []interface{}{
		&PostModel{},
		&CertificateModel{},
		&EducationModel{},
		&ExperienceModel{},
		&ProjectModel{},
		&ReviewModel{},
		&VoteCounterModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
