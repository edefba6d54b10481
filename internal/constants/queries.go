package constants

// Ship queries use ? placeholders; repositories pass them through sqlx.Rebind.
const (
	SelectAllShips = `
	SELECT id, name, planet, ship_type, prod_date, is_used, speed, crew_size, rating
	FROM ships
	ORDER BY id
	`

	SelectShipByID = `
	SELECT id, name, planet, ship_type, prod_date, is_used, speed, crew_size, rating
	FROM ships
	WHERE id = ?
	`

	InsertShip = `
	INSERT INTO ships (name, planet, ship_type, prod_date, is_used, speed, crew_size, rating)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id
	`

	UpdateShip = `
	UPDATE ships
	SET name = ?, planet = ?, ship_type = ?, prod_date = ?, is_used = ?, speed = ?, crew_size = ?, rating = ?
	WHERE id = ?
	`

	DeleteShipByID = `
	DELETE FROM ships WHERE id = ?
	`
)
