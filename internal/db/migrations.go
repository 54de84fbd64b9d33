package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'device_type') THEN
			CREATE TYPE device_type AS ENUM ('FIXTURE', 'FIXTURE_LINEAR', 'FIXTURE_TRACK', 'SENSOR', 'CONTROLLER', 'GATEWAY');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'rule_action') THEN
			CREATE TYPE rule_action AS ENUM ('DIM', 'ON', 'OFF');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS sites (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		address VARCHAR(512),
		timezone VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS devices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		site_id UUID NOT NULL REFERENCES sites(id) ON DELETE CASCADE,
		name VARCHAR(255),
		type device_type NOT NULL,
		x DOUBLE PRECISION,
		y DOUBLE PRECISION,
		orientation DOUBLE PRECISION,
		location VARCHAR(255),
		zone_label VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_devices_site_id ON devices (site_id);`,
	`CREATE INDEX IF NOT EXISTS idx_devices_type ON devices (type);`,
	`CREATE TABLE IF NOT EXISTS zones (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		site_id UUID NOT NULL REFERENCES sites(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		color VARCHAR(32),
		description TEXT,
		polygon JSONB,
		device_ids JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_zones_site_id ON zones (site_id);`,
	`CREATE TABLE IF NOT EXISTS lighting_rules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		site_id UUID NOT NULL REFERENCES sites(id) ON DELETE CASCADE,
		zone_id UUID NOT NULL REFERENCES zones(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		action rule_action NOT NULL,
		level INTEGER,
		start_time VARCHAR(8),
		end_time VARCHAR(8),
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_lighting_rules_site_id ON lighting_rules (site_id);`,
	`CREATE INDEX IF NOT EXISTS idx_lighting_rules_zone_id ON lighting_rules (zone_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_sites_updated_at') THEN
			CREATE TRIGGER trg_sites_updated_at
				BEFORE UPDATE ON sites
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_devices_updated_at') THEN
			CREATE TRIGGER trg_devices_updated_at
				BEFORE UPDATE ON devices
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_zones_updated_at') THEN
			CREATE TRIGGER trg_zones_updated_at
				BEFORE UPDATE ON zones
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_lighting_rules_updated_at') THEN
			CREATE TRIGGER trg_lighting_rules_updated_at
				BEFORE UPDATE ON lighting_rules
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
