package schemas

import "github.com/Sirdoh/NFTArtGallery/lib/db"

const (
	artworksSQL = `
CREATE TABLE IF NOT EXISTS artworks(
  token VARCHAR(256) NOT NULL,  -- token
  livemode BOOL NOT NULL,
  created TIMESTAMP NOT NULL,

  id BIGINT NOT NULL,           -- id allocated from the registry counter
  details VARCHAR(512) NOT NULL,
  owner VARCHAR(256) NOT NULL,  -- owner username
  transferred BOOL NOT NULL DEFAULT FALSE,

  PRIMARY KEY(livemode, id),
  CONSTRAINT artworks_token_u UNIQUE (token)
);
`
)

func init() {
	db.RegisterSchema(
		"gallery",
		"artworks",
		artworksSQL,
	)
}
