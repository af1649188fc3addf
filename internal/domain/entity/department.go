package entity

// Department identifica un área operativa del negocio.
// Los valores coinciden con la columna revenue_records.department.
type Department string

const (
	DepartmentBar         Department = "bar"
	DepartmentRestaurant  Department = "restaurant"
	DepartmentKitchen     Department = "kitchen"
	DepartmentSpa         Department = "spa"
	DepartmentFrontOffice Department = "front_office"
)

// AllDepartments lista canónica de departamentos conocidos.
// Un registro puede traer un departamento fuera de esta lista (ej. uno nuevo
// creado en el sistema de reservas); el pipeline lo procesa igual.
var AllDepartments = []Department{
	DepartmentBar,
	DepartmentRestaurant,
	DepartmentKitchen,
	DepartmentSpa,
	DepartmentFrontOffice,
}
