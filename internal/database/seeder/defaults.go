package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobCatalogSeeder{},
	}
}
