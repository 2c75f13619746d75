// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `INSERT INTO users (email, username, password_hash, avatar_url)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	findUserByEmail = `SELECT id, email, username, password_hash, avatar_url, created_at, last_login
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, username, password_hash, avatar_url, created_at, last_login
    FROM users
    WHERE id = $1;`

	touchLastLogin = `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1;`

	countUsers = `SELECT COUNT(*) FROM users;`

	// users_email_key and users_username_key are created by the first migration.
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

// Local (SQLite) session queries. The table holds at most one row.
const (
	saveSession = `INSERT INTO sessions (id, user_id, email, username, token, expires_at, created_at)
    VALUES (1, ?, ?, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        user_id = excluded.user_id,
        email = excluded.email,
        username = excluded.username,
        token = excluded.token,
        expires_at = excluded.expires_at,
        created_at = excluded.created_at;`

	getSession = `SELECT user_id, email, username, token, expires_at, created_at FROM sessions WHERE id = 1;`

	deleteSession = `DELETE FROM sessions;`
)
