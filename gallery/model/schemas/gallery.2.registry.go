package schemas

import "github.com/Sirdoh/NFTArtGallery/lib/db"

const (
	registrySQL = `
CREATE TABLE IF NOT EXISTS registry(
  token VARCHAR(256) NOT NULL,  -- token
  livemode BOOL NOT NULL,
  created TIMESTAMP NOT NULL,

  latest_id BIGINT NOT NULL,    -- highest id ever allocated

  PRIMARY KEY(livemode)
);
`
)

func init() {
	db.RegisterSchema(
		"gallery",
		"registry",
		registrySQL,
	)
}
