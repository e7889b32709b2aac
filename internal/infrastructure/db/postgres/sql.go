package postgres

const insertPlaceSQL = `
INSERT INTO places (
  id, creator_id, title, description, address,
  lat, lng, image_key, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
`

const getPlaceSQL = `
SELECT id, creator_id, title, description, address,
       lat, lng, image_key, created_at, updated_at
FROM places WHERE id = $1
`

const getPlaceForUpdateSQL = getPlaceSQL + ` FOR UPDATE`

const listPlacesByUserSQL = `
SELECT p.id, p.creator_id, p.title, p.description, p.address,
       p.lat, p.lng, p.image_key, p.created_at, p.updated_at
FROM places p
JOIN user_places up ON up.place_id = p.id
WHERE up.user_id = $1
ORDER BY p.created_at ASC
`

const updatePlaceSQL = `
UPDATE places SET
  title=$2, description=$3, updated_at=$4
WHERE id=$1
`

const deletePlaceSQL = `DELETE FROM places WHERE id = $1`

const linkPlaceSQL = `INSERT INTO user_places (place_id, user_id) VALUES ($1, $2)`

const unlinkPlaceSQL = `DELETE FROM user_places WHERE place_id = $1 AND user_id = $2`
